package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hr-attendance/backend/internal/dto"
	"hr-attendance/backend/internal/model"
	"hr-attendance/backend/internal/repository"
)

var ErrEmployeeNotFound = errors.New("员工不存在")

// EmployeeService 员工查询业务接口（员工档案本身由上游 HR 系统维护）
type EmployeeService interface {
	Get(ctx context.Context, empObjID string) (*dto.EmployeeResponse, error)
	List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) Get(ctx context.Context, empObjID string) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, empObjID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *employeeService) List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error) {
	emps, total, err := s.repo.Employee.List(ctx, req.Keyword, req.ActiveOnly, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, 0, err
	}
	items := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		items = append(items, *toEmployeeResponse(&emps[i]))
	}
	return items, total, nil
}

// toEmployeeResponse Employee → EmployeeResponse
func toEmployeeResponse(emp *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		EmpObjID:   emp.EmpObjID,
		Surname:    emp.Surname,
		Firstname:  emp.Firstname,
		Middlename: emp.Middlename,
		FullName:   emp.FullName(),
		BadgeNo:    emp.BadgeNo,
		Department: emp.Department,
		IsActive:   emp.IsActive,
	}
}
