package repository

import (
	"context"

	"gorm.io/gorm"

	"hr-attendance/backend/internal/model"
)

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	GetByID(ctx context.Context, empObjID string) (*model.Employee, error)
	List(ctx context.Context, keyword string, activeOnly bool, offset, limit int) ([]model.Employee, int64, error)
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) GetByID(ctx context.Context, empObjID string) (*model.Employee, error) {
	var emp model.Employee
	if err := r.db.WithContext(ctx).First(&emp, "emp_objid = ?", empObjID).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) List(ctx context.Context, keyword string, activeOnly bool, offset, limit int) ([]model.Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Employee{})
	if keyword != "" {
		kw := "%" + keyword + "%"
		query = query.Where("surname ILIKE ? OR firstname ILIKE ? OR badge_no ILIKE ?", kw, kw, kw)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var emps []model.Employee
	if err := query.Order("surname, firstname").Offset(offset).Limit(limit).Find(&emps).Error; err != nil {
		return nil, 0, err
	}
	return emps, total, nil
}
