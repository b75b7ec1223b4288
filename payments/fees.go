package payments

import "math"

// PlatformFeeRate is the share of every session price retained by the
// marketplace. Display copy and the calculator both read this constant.
const PlatformFeeRate = 0.10

// SplitAmounts splits a gross session price into the teacher payout and the
// platform fee, both rounded half-up to the cent. Defined for all amounts >= 0.
func SplitAmounts(amountTotal float64) (amountTeacher, platformFee float64) {
	platformFee = math.Round(amountTotal*PlatformFeeRate*100) / 100
	amountTeacher = math.Round((amountTotal-platformFee)*100) / 100
	return amountTeacher, platformFee
}
