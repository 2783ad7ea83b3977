package model

import "time"

// 配送ゾーン。
// Countriesはカンマ区切りのISOコード、RatePriceは最小通貨単位。
type ShippingZone struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Countries string    `gorm:"type:text;not null" json:"countries"`
	RatePrice int64     `gorm:"not null" json:"rate_price"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
