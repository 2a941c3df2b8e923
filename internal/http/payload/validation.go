package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var (
	addressRule = validation.Match(regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)).
			Error("must be a 0x-prefixed 20-byte hex address")
	txHashRule = validation.Match(regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)).
			Error("must be a 0x-prefixed 32-byte hex hash")
	unitsRule = validation.Match(regexp.MustCompile(`^[0-9]+$`)).
			Error("must be an integer amount in the token's smallest unit")
	referenceKindRule = validation.In("TX_HASH", "PAYROLL_PAYMENT", "REQUEST", "tx_hash", "payroll_payment", "request").
				Error("must be TX_HASH, PAYROLL_PAYMENT or REQUEST")
)
