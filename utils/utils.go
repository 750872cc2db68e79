package utils

import (
	"strconv"

	"elms/models"
	"elms/store"

	"github.com/google/uuid"
)

// GenerateToken returns an opaque token for password resets and payment
// references.
func GenerateToken() string {
	return uuid.NewString()
}

// PlatformFeePercent reads the configured platform fee, defaulting to 20
// when the setting is missing or malformed.
func PlatformFeePercent() int64 {
	setting, err := store.S.GetSetting(models.SettingPlatformFeePercent)
	if err != nil {
		return 20
	}
	percent, err := strconv.ParseInt(setting.Value, 10, 64)
	if err != nil || percent < 0 || percent > 100 {
		return 20
	}
	return percent
}

// SplitPayment computes the platform fee and trainer share for an amount.
func SplitPayment(amount int64) (platformFee, trainerShare int64) {
	platformFee = amount * PlatformFeePercent() / 100
	trainerShare = amount - platformFee
	return platformFee, trainerShare
}
