package repository_test

import (
	"context"
	"flowledger/internal/db"
	"flowledger/internal/repository"
	"fmt"
	"sync"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm/logger"
)

const (
	alice = "0x1111111111111111111111111111111111111111"
	bob   = "0x2222222222222222222222222222222222222222"
	carol = "0x3333333333333333333333333333333333333333"
)

func hash(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

func newTestDB() *db.GormDB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := db.Open(db.Dialector(dsn), logger.Silent)
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(gormDB.Close)
	return gormDB
}

var _ = Describe("LedgerRepository", func() {
	var (
		repo *repository.LedgerRepository
		ctx  context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = repository.NewLedgerRepository(newTestDB())
		Expect(repo.Migrate(ctx)).To(Succeed())
	})

	Describe("Migrate", func() {
		It("should record the schema version once", func() {
			Expect(repo.Migrate(ctx)).To(Succeed())

			version, err := repo.SchemaVersion(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal(repository.SchemaVersion))
		})
	})

	Describe("InsertTransfer", func() {
		var transfer repository.CachedTransfer

		BeforeEach(func() {
			transfer = repository.CachedTransfer{
				TransactionHash: "0xAB" + hash(1)[4:],
				BlockNumber:     100,
				Timestamp:       1700000000,
				From:            "0x1111111111111111111111111111111111111111",
				To:              bob,
				Value:           "1000000",
				TokenSymbol:     "USDC",
				TokenDecimals:   6,
			}
		})

		It("should store the transfer with lowercase hash and addresses", func() {
			inserted, err := repo.InsertTransfer(ctx, transfer)
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(BeTrue())

			stored, err := repo.GetTransferByHash(ctx, transfer.TransactionHash)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.TransactionHash).To(Equal("0xab" + hash(1)[4:]))
			Expect(stored.Value).To(Equal("1000000"))
		})

		It("should ignore a second insert with the same hash", func() {
			inserted, err := repo.InsertTransfer(ctx, transfer)
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(BeTrue())

			transfer.Value = "5"
			inserted, err = repo.InsertTransfer(ctx, transfer)
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(BeFalse())

			stored, err := repo.GetTransferByHash(ctx, transfer.TransactionHash)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Value).To(Equal("1000000"))
		})

		It("should report existence case-insensitively", func() {
			_, err := repo.InsertTransfer(ctx, transfer)
			Expect(err).NotTo(HaveOccurred())

			exists, err := repo.TransferExists(ctx, "0xab"+hash(1)[4:])
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = repo.TransferExists(ctx, hash(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("GetTransferByHash", func() {
		It("should return ErrTransferNotFound for an unknown hash", func() {
			_, err := repo.GetTransferByHash(ctx, hash(9))
			Expect(err).To(MatchError(repository.ErrTransferNotFound))
		})
	})

	Describe("LatestBlockFor", func() {
		When("nothing is cached for the address", func() {
			It("should report absence", func() {
				_, ok, err := repo.LatestBlockFor(ctx, alice)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeFalse())
			})
		})

		When("the address is sender or recipient", func() {
			BeforeEach(func() {
				for i, t := range []repository.CachedTransfer{
					{BlockNumber: 10, From: alice, To: bob},
					{BlockNumber: 30, From: bob, To: alice},
					{BlockNumber: 50, From: bob, To: carol},
				} {
					t.TransactionHash = hash(i + 1)
					t.Value = "1"
					_, err := repo.InsertTransfer(ctx, t)
					Expect(err).NotTo(HaveOccurred())
				}
			})

			It("should return the highest matching block", func() {
				latest, ok, err := repo.LatestBlockFor(ctx, alice)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue())
				Expect(latest).To(Equal(uint64(30)))
			})
		})
	})

	Describe("SearchTransfers", func() {
		BeforeEach(func() {
			for i, t := range []repository.CachedTransfer{
				{Timestamp: 100, From: alice, To: bob},
				{Timestamp: 300, From: bob, To: alice},
				{Timestamp: 200, From: carol, To: alice},
				{Timestamp: 400, From: bob, To: carol},
			} {
				t.TransactionHash = hash(i + 1)
				t.Value = "1"
				_, err := repo.InsertTransfer(ctx, t)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should return the user's transfers newest first", func() {
			transfers, err := repo.SearchTransfers(ctx, repository.TransferQuery{User: alice})
			Expect(err).NotTo(HaveOccurred())
			Expect(transfers).To(HaveLen(3))
			Expect(transfers[0].Timestamp).To(Equal(int64(300)))
			Expect(transfers[1].Timestamp).To(Equal(int64(200)))
			Expect(transfers[2].Timestamp).To(Equal(int64(100)))
		})

		It("should restrict by direction", func() {
			in, err := repo.SearchTransfers(ctx, repository.TransferQuery{User: alice, Direction: "in"})
			Expect(err).NotTo(HaveOccurred())
			Expect(in).To(HaveLen(2))

			out, err := repo.SearchTransfers(ctx, repository.TransferQuery{User: alice, Direction: "out"})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveLen(1))
			Expect(out[0].To).To(Equal(bob))
		})

		It("should compose counterparty and time bounds", func() {
			since, until := int64(150), int64(350)
			transfers, err := repo.SearchTransfers(ctx, repository.TransferQuery{
				User:    alice,
				Address: bob,
				Since:   &since,
				Until:   &until,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(transfers).To(HaveLen(1))
			Expect(transfers[0].TransactionHash).To(Equal(hash(2)))
		})

		It("should match an exact hash", func() {
			transfers, err := repo.SearchTransfers(ctx, repository.TransferQuery{User: alice, TxHash: hash(3)})
			Expect(err).NotTo(HaveOccurred())
			Expect(transfers).To(HaveLen(1))
			Expect(transfers[0].From).To(Equal(carol))
		})
	})

	Describe("UpsertAnnotation", func() {
		var annotation repository.Annotation

		BeforeEach(func() {
			annotation = repository.Annotation{
				ReferenceType: "TX_HASH",
				ReferenceID:   "0xABC",
				MemoText:      "invoice",
				Tags:          []string{"rent"},
				CreatedAt:     1000,
				UpdatedAt:     1000,
			}
		})

		It("should insert a new annotation with a lowercase reference", func() {
			stored, err := repo.UpsertAnnotation(ctx, annotation)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.ID).NotTo(BeZero())
			Expect(stored.ReferenceID).To(Equal("0xabc"))
			Expect(stored.Tags).To(Equal([]string{"rent"}))
		})

		It("should update the existing row in place", func() {
			first, err := repo.UpsertAnnotation(ctx, annotation)
			Expect(err).NotTo(HaveOccurred())

			annotation.ReferenceID = "0xabc"
			annotation.MemoText = "invoice 2"
			annotation.Tags = []string{"rent", "march"}
			annotation.CreatedAt = 5000
			annotation.UpdatedAt = 2000
			second, err := repo.UpsertAnnotation(ctx, annotation)
			Expect(err).NotTo(HaveOccurred())

			Expect(second.ID).To(Equal(first.ID))
			Expect(second.CreatedAt).To(Equal(int64(1000)))
			Expect(second.UpdatedAt).To(Equal(int64(2000)))
			Expect(second.MemoText).To(Equal("invoice 2"))
			Expect(second.Tags).To(Equal([]string{"rent", "march"}))

			all, err := repo.ListAnnotations(ctx, "", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
		})

		It("should never create two rows under concurrent saves", func() {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					a := annotation
					a.MemoText = fmt.Sprintf("memo %d", i)
					_, err := repo.UpsertAnnotation(ctx, a)
					Expect(err).NotTo(HaveOccurred())
				}(i)
			}
			wg.Wait()

			all, err := repo.ListAnnotations(ctx, "TX_HASH", "0xabc")
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
		})
	})

	Describe("GetAnnotation", func() {
		It("should return ErrAnnotationNotFound when absent", func() {
			_, err := repo.GetAnnotation(ctx, "TX_HASH", "0xdead")
			Expect(err).To(MatchError(repository.ErrAnnotationNotFound))
		})

		It("should look up by reference case-insensitively", func() {
			_, err := repo.UpsertAnnotation(ctx, repository.Annotation{ReferenceType: "REQUEST", ReferenceID: "0xbeef"})
			Expect(err).NotTo(HaveOccurred())

			found, err := repo.GetAnnotation(ctx, "REQUEST", "0xBEEF")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ReferenceID).To(Equal("0xbeef"))

			_, err = repo.GetAnnotation(ctx, "TX_HASH", "0xbeef")
			Expect(err).To(MatchError(repository.ErrAnnotationNotFound))
		})
	})

	Describe("Settings", func() {
		It("should set, overwrite and delete a value", func() {
			Expect(repo.SetSetting(ctx, "theme", "dark")).To(Succeed())
			Expect(repo.SetSetting(ctx, "theme", "light")).To(Succeed())

			value, err := repo.GetSetting(ctx, "theme")
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal("light"))

			Expect(repo.DeleteSetting(ctx, "theme")).To(Succeed())
			_, err = repo.GetSetting(ctx, "theme")
			Expect(err).To(MatchError(repository.ErrSettingNotFound))
			Expect(repo.DeleteSetting(ctx, "theme")).To(MatchError(repository.ErrSettingNotFound))
		})
	})

	Describe("Workers", func() {
		It("should create, find, update and delete", func() {
			worker := &repository.Worker{Address: "0xAAAA000000000000000000000000000000000000", Name: "Zed"}
			Expect(repo.CreateWorker(ctx, worker)).To(Succeed())
			Expect(repo.CreateWorker(ctx, &repository.Worker{Address: bob, Name: "Amy"})).To(Succeed())

			found, err := repo.GetWorkerByAddress(ctx, "0xaaaa000000000000000000000000000000000000")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(worker.ID))

			found.Email = "zed@example.com"
			Expect(repo.UpdateWorker(ctx, &found)).To(Succeed())

			workers, err := repo.ListWorkers(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(workers).To(HaveLen(2))
			Expect(workers[0].Name).To(Equal("Amy"))
			Expect(workers[1].Email).To(Equal("zed@example.com"))

			Expect(repo.DeleteWorker(ctx, worker.ID)).To(Succeed())
			_, err = repo.GetWorker(ctx, worker.ID)
			Expect(err).To(MatchError(repository.ErrWorkerNotFound))
		})
	})

	Describe("PayrollRuns", func() {
		It("should keep one run per run id", func() {
			Expect(repo.CreatePayrollRun(ctx, &repository.PayrollRun{RunID: "run-1", Employer: alice, Status: "pending", TotalAmount: "1"})).To(Succeed())

			err := repo.CreatePayrollRun(ctx, &repository.PayrollRun{RunID: "run-1", Employer: bob, Status: "draft", TotalAmount: "2"})
			Expect(err).To(MatchError(repository.ErrPayrollExists))

			run, err := repo.GetPayrollRun(ctx, "run-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(run.Employer).To(Equal(alice))
			Expect(run.TotalAmount).To(Equal("1"))
		})
	})

	Describe("PayRequests", func() {
		It("should filter by worker and status", func() {
			Expect(repo.CreatePayRequest(ctx, &repository.PayRequest{ID: "0xAA", WorkerAddress: alice, EmployerAddress: bob, Status: "pending", CreatedAt: 1})).To(Succeed())
			Expect(repo.CreatePayRequest(ctx, &repository.PayRequest{ID: "0xbb", WorkerAddress: alice, EmployerAddress: carol, Status: "paid", CreatedAt: 2})).To(Succeed())
			Expect(repo.CreatePayRequest(ctx, &repository.PayRequest{ID: "0xcc", WorkerAddress: carol, EmployerAddress: bob, Status: "pending", CreatedAt: 3})).To(Succeed())

			requests, err := repo.ListPayRequests(ctx, repository.PayRequestFilter{Worker: alice})
			Expect(err).NotTo(HaveOccurred())
			Expect(requests).To(HaveLen(2))
			Expect(requests[0].ID).To(Equal("0xbb"))

			requests, err = repo.ListPayRequests(ctx, repository.PayRequestFilter{Employer: bob, Status: "pending"})
			Expect(err).NotTo(HaveOccurred())
			Expect(requests).To(HaveLen(2))

			found, err := repo.GetPayRequest(ctx, "0xaa")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.EmployerAddress).To(Equal(bob))
		})
	})

	Describe("Export, Clear and Import", func() {
		BeforeEach(func() {
			_, err := repo.InsertTransfer(ctx, repository.CachedTransfer{TransactionHash: hash(1), From: alice, To: bob, Value: "42", Timestamp: 7})
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.UpsertAnnotation(ctx, repository.Annotation{ReferenceType: "TX_HASH", ReferenceID: hash(1), MemoText: "lunch"})
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.CreateWorker(ctx, &repository.Worker{Address: bob, Name: "Bob"})).To(Succeed())
			Expect(repo.CreatePayrollRun(ctx, &repository.PayrollRun{RunID: "run-1", Employer: alice, Status: "pending"})).To(Succeed())
			Expect(repo.CreatePayRequest(ctx, &repository.PayRequest{ID: hash(5), WorkerAddress: bob, EmployerAddress: alice, Status: "pending"})).To(Succeed())
			Expect(repo.SetSetting(ctx, "currency", "USD")).To(Succeed())
		})

		It("should restore business fields after a clear", func() {
			snapshot, err := repo.Export(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Version).To(Equal(repository.SchemaVersion))
			Expect(snapshot.Transfers).To(HaveLen(1))

			Expect(repo.Clear(ctx)).To(Succeed())
			empty, err := repo.Export(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(empty.Transfers).To(BeEmpty())
			Expect(empty.Annotations).To(BeEmpty())
			Expect(empty.UserSettings).To(BeEmpty())

			stats, err := repo.Import(ctx, snapshot)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Transfers).To(Equal(1))
			Expect(stats.Annotations).To(Equal(1))
			Expect(stats.Workers).To(Equal(1))
			Expect(stats.PayrollRuns).To(Equal(1))
			Expect(stats.PayRequests).To(Equal(1))
			Expect(stats.UserSettings).To(Equal(1))
			Expect(stats.Duplicates()).To(BeZero())

			restored, err := repo.GetTransferByHash(ctx, hash(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(restored.From).To(Equal(alice))
			Expect(restored.To).To(Equal(bob))
			Expect(restored.Value).To(Equal("42"))
			Expect(restored.Timestamp).To(Equal(int64(7)))
		})

		It("should keep local rows when importing overlapping data", func() {
			snapshot, err := repo.Export(ctx)
			Expect(err).NotTo(HaveOccurred())

			snapshot.Transfers[0].Value = "999"
			snapshot.UserSettings[0].Value = "EUR"
			snapshot.Transfers = append(snapshot.Transfers, repository.CachedTransfer{TransactionHash: hash(2), From: bob, To: alice, Value: "1"})

			stats, err := repo.Import(ctx, snapshot)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Transfers).To(Equal(1))
			Expect(stats.DuplicateTransfers).To(Equal(1))
			Expect(stats.DuplicateAnnotations).To(Equal(1))
			Expect(stats.DuplicateUserSettings).To(Equal(1))
			Expect(stats.DuplicatePayrollRuns).To(Equal(1))
			Expect(stats.PayrollRuns).To(BeZero())
			Expect(stats.Workers).To(Equal(1))

			local, err := repo.GetTransferByHash(ctx, hash(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(local.Value).To(Equal("42"))

			currency, err := repo.GetSetting(ctx, "currency")
			Expect(err).NotTo(HaveOccurred())
			Expect(currency).To(Equal("USD"))

			after, err := repo.Export(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(after.Transfers).To(HaveLen(2))
			Expect(after.Workers).To(HaveLen(2))
			Expect(after.PayrollRuns).To(HaveLen(2))
		})

		It("should give rows without identity a fresh one", func() {
			stats, err := repo.Import(ctx, repository.Snapshot{
				Version:     repository.SchemaVersion,
				PayRequests: []repository.PayRequest{{WorkerAddress: bob, EmployerAddress: alice, Status: "pending"}},
				PayrollRuns: []repository.PayrollRun{{Employer: alice, Status: "draft"}},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.PayRequests).To(Equal(1))

			runs, err := repo.ListPayrollRuns(ctx, repository.PayrollFilter{Status: "draft"})
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(HaveLen(1))
			Expect(runs[0].RunID).NotTo(BeEmpty())
		})
	})
})
