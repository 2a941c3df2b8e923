package core

import (
	"context"
	"errors"
	"flowledger/internal/repository"
	"fmt"
	"strings"
)

// GetAnnotation returns the annotation attached to ref. The boolean is false, with a nil
// error, when there is none.
func (l *Ledger) GetAnnotation(ctx context.Context, ref Reference) (repository.Annotation, bool, error) {
	annotation, err := l.repo.GetAnnotation(ctx, string(ref.Kind), ref.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAnnotationNotFound) {
			return repository.Annotation{}, false, nil
		}
		return repository.Annotation{}, false, fmt.Errorf("get annotation: %w", err)
	}
	return annotation, true, nil
}

// SaveAnnotation creates or updates the single annotation of a reference and returns the
// stored row. Updating keeps the row's identity and creation time.
func (l *Ledger) SaveAnnotation(ctx context.Context, input AnnotationInput) (repository.Annotation, error) {
	ref, err := NewReference(string(input.Reference.Kind), input.Reference.ID)
	if err != nil {
		return repository.Annotation{}, err
	}

	now := TimeNow().UnixMilli()
	stored, err := l.repo.UpsertAnnotation(ctx, repository.Annotation{
		ReferenceType: string(ref.Kind),
		ReferenceID:   ref.ID,
		MemoText:      input.MemoText,
		Tags:          normalizeTags(input.Tags),
		Metadata:      input.Metadata,
		MetadataCID:   input.MetadataCID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		l.logs.Errorw("failed to save annotation", "kind", ref.Kind, "id", ref.ID, "error", err)
		return repository.Annotation{}, fmt.Errorf("save annotation: %w", err)
	}

	l.logs.Infow("annotation saved", "kind", ref.Kind, "id", ref.ID, "annotationId", stored.ID)
	return stored, nil
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}
