package config_test

import (
	"flowledger/internal/config"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		GinkgoT().Setenv("API_PORT", "8080")
		GinkgoT().Setenv("ETH_NODE_URL", "https://polygon-rpc.example")
		GinkgoT().Setenv("PAYSLIP_SECRET", "s3cret")
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only required variables are set", func() {
		It("should fill in defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.NodeURL).To(Equal("https://polygon-rpc.example"))
			Expect(app.DBConnectionDSN).To(Equal("flowledger.db"))
			Expect(app.ExplorerURL).To(Equal("https://api.polygonscan.com/api"))
			Expect(app.TxLinkBase).To(Equal("https://polygonscan.com/tx/"))
			Expect(app.Token.Symbol).To(Equal("USDC"))
			Expect(app.Token.Decimals).To(Equal(uint8(6)))
			Expect(app.BlockTimeSeconds).To(Equal(uint64(2)))
			Expect(app.LogLevel).To(Equal("info"))
		})
	})

	When("optional variables are overridden", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("TOKEN_DECIMALS", "18")
			GinkgoT().Setenv("TOKEN_SYMBOL", "DAI")
			GinkgoT().Setenv("BLOCK_TIME_SECONDS", "12")
			GinkgoT().Setenv("DB_DSN", "postgres://ledger@localhost/ledger")
		})

		It("should use the provided values", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Token.Decimals).To(Equal(uint8(18)))
			Expect(app.Token.Symbol).To(Equal("DAI"))
			Expect(app.BlockTimeSeconds).To(Equal(uint64(12)))
			Expect(app.DBConnectionDSN).To(Equal("postgres://ledger@localhost/ledger"))
		})
	})

	When("token decimals is not a number", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("TOKEN_DECIMALS", "six")
		})

		It("should return an error naming the variable", func() {
			Expect(err).To(MatchError(ContainSubstring("TOKEN_DECIMALS")))
		})
	})

	When("block time is zero", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("BLOCK_TIME_SECONDS", "0")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("BLOCK_TIME_SECONDS")))
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			Expect(os.Unsetenv("ETH_NODE_URL")).To(Succeed())
		})

		It("should return an env var not found error", func() {
			Expect(err).To(MatchError(ContainSubstring("environment variable not found: ETH_NODE_URL")))
		})
	})
})
