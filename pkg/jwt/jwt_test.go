package jwt_test

import (
	tokenIssuer "flowledger/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ShareIssuer", func() {
	var (
		issuer *tokenIssuer.ShareIssuer
		grant  tokenIssuer.Grant
	)

	BeforeEach(func() {
		issuer = tokenIssuer.NewShareIssuer([]byte("test-secret"))
		grant = tokenIssuer.Grant{
			Kind:    "TX_HASH",
			Subject: "0xabc",
			TTL:     time.Hour,
		}
		DeferCleanup(func() { tokenIssuer.TimeNow = time.Now })
	})

	It("should round trip the grant", func() {
		now := time.Unix(1_700_000_000, 0)
		tokenIssuer.TimeNow = func() time.Time { return now }

		signed, err := issuer.Issue(grant)
		Expect(err).NotTo(HaveOccurred())

		claims, err := issuer.Parse(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.Subject).To(Equal("0xabc"))
		Expect(claims.Kind).To(Equal("TX_HASH"))
		Expect(claims.Issuer).To(Equal("flowledger"))
		Expect(claims.ExpiresAt).To(Equal(now.Add(time.Hour).Unix()))
		Expect(claims.Id).NotTo(BeEmpty())
	})

	It("should give every token its own id", func() {
		first, err := issuer.Issue(grant)
		Expect(err).NotTo(HaveOccurred())
		second, err := issuer.Issue(grant)
		Expect(err).NotTo(HaveOccurred())
		Expect(first).NotTo(Equal(second))
	})

	It("should reject tokens signed with another secret", func() {
		other := tokenIssuer.NewShareIssuer([]byte("other-secret"))
		signed, err := other.Issue(grant)
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.Parse(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject expired tokens", func() {
		signed, err := issuer.Issue(grant)
		Expect(err).NotTo(HaveOccurred())

		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = issuer.Parse(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("should reject tokens from another issuer", func() {
		claims := tokenIssuer.ShareClaims{
			Kind: "TX_HASH",
			StandardClaims: jwt.StandardClaims{
				Issuer:    "someone-else",
				Subject:   "0xabc",
				ExpiresAt: time.Now().Add(time.Hour).Unix(),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.Parse(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject non-HMAC tokens", func() {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x", "iss": "flowledger"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.Parse(unsigned)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := issuer.Parse("not-a-token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})
})
