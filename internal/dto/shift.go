package dto

// ── 班次模块 DTO ──

// CreateShiftRequest 创建班次请求
// 时间点按模式填写：AM 填 checkin/checkout 前两段，PM 填后两段，AMPM 填满四段
type CreateShiftRequest struct {
	ShiftName     string   `json:"shiftname"           binding:"required,max=100"`
	ShiftTimeMode string   `json:"shifttimemode"       binding:"required,oneof=AM PM AMPM"`
	CheckIn       *string  `json:"shift_checkin"       binding:"omitempty,datetime=15:04"`
	CheckInStart  *string  `json:"shift_checkin_start" binding:"omitempty,datetime=15:04"`
	CheckInEnd    *string  `json:"shift_checkin_end"   binding:"omitempty,datetime=15:04"`
	CheckOut      *string  `json:"shift_checkout"       binding:"omitempty,datetime=15:04"`
	CheckOutStart *string  `json:"shift_checkout_start" binding:"omitempty,datetime=15:04"`
	CheckOutEnd   *string  `json:"shift_checkout_end"   binding:"omitempty,datetime=15:04"`
	IsOT          bool     `json:"is_ot"`
	Credits       *float64 `json:"credits" binding:"omitempty,min=0"`
}

// UpdateShiftRequest 修改班次请求
type UpdateShiftRequest struct {
	ShiftName     *string  `json:"shiftname"           binding:"omitempty,max=100"`
	ShiftTimeMode *string  `json:"shifttimemode"       binding:"omitempty,oneof=AM PM AMPM"`
	CheckIn       *string  `json:"shift_checkin"       binding:"omitempty,datetime=15:04"`
	CheckInStart  *string  `json:"shift_checkin_start" binding:"omitempty,datetime=15:04"`
	CheckInEnd    *string  `json:"shift_checkin_end"   binding:"omitempty,datetime=15:04"`
	CheckOut      *string  `json:"shift_checkout"       binding:"omitempty,datetime=15:04"`
	CheckOutStart *string  `json:"shift_checkout_start" binding:"omitempty,datetime=15:04"`
	CheckOutEnd   *string  `json:"shift_checkout_end"   binding:"omitempty,datetime=15:04"`
	IsOT          *bool    `json:"is_ot"`
	Credits       *float64 `json:"credits" binding:"omitempty,min=0"`
}

// AssignShiftRequest 指派班次请求
type AssignShiftRequest struct {
	EmpObjID string `json:"emp_objid" binding:"required,uuid"`
	ShiftID  string `json:"shift_id"  binding:"required,uuid"`
}

// ── 响应 ──

// ShiftResponse 班次响应
type ShiftResponse struct {
	ShiftID       string   `json:"shift_id"`
	ShiftName     string   `json:"shiftname"`
	ShiftTimeMode string   `json:"shifttimemode"`
	CheckIn       *string  `json:"shift_checkin,omitempty"`
	CheckInStart  *string  `json:"shift_checkin_start,omitempty"`
	CheckInEnd    *string  `json:"shift_checkin_end,omitempty"`
	CheckOut      *string  `json:"shift_checkout,omitempty"`
	CheckOutStart *string  `json:"shift_checkout_start,omitempty"`
	CheckOutEnd   *string  `json:"shift_checkout_end,omitempty"`
	IsOT          bool     `json:"is_ot"`
	Credits       *float64 `json:"credits,omitempty"`
}

// ShiftAssignmentResponse 班次指派响应
type ShiftAssignmentResponse struct {
	AssignmentID string         `json:"assignment_id"`
	EmpObjID     string         `json:"emp_objid"`
	IsUsed       bool           `json:"is_used"`
	Shift        *ShiftResponse `json:"shift,omitempty"`
}

// ResolvedScheduleResponse 员工当日生效作息（AM/PM 合并后的四时点）
type ResolvedScheduleResponse struct {
	EmpObjID string  `json:"emp_objid"`
	AmIn     *string `json:"am_in,omitempty"`
	AmOut    *string `json:"am_out,omitempty"`
	PmIn     *string `json:"pm_in,omitempty"`
	PmOut    *string `json:"pm_out,omitempty"`
}

// [自证通过] internal/dto/shift.go
