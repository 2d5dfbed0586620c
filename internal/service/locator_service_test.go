package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"hr-attendance/backend/config"
	"hr-attendance/backend/internal/dto"
	"hr-attendance/backend/internal/model"
)

const testEmpID = "6f0a6d2e-0000-0000-0000-000000000001"

func setupLocatorService() (*locatorService, *testRepos) {
	repo, mocks := newTestRepository()
	cfg := &config.Config{
		Locator: config.LocatorConfig{
			RefTag:   "LE",
			SensorID: "101",
			DeviceSN: "CLXE224760198",
		},
	}
	svc := NewLocatorService(cfg, repo, zap.NewNop()).(*locatorService)
	// 固定创建时刻，参考号序列按 2025-09-17 计数
	svc.now = func() time.Time {
		return time.Date(2025, 9, 17, 10, 0, 0, 0, time.UTC)
	}
	return svc, mocks
}

func seedEmployee(mocks *testRepos) {
	mocks.emps.emps[testEmpID] = &model.Employee{
		EmpObjID:  testEmpID,
		Surname:   "Reyes",
		Firstname: "Ana",
		IsActive:  true,
	}
}

// seedFullDayShifts 上午班 08:00-12:00 + 下午班 13:00-17:00
func seedFullDayShifts(mocks *testRepos) {
	am := &model.Shift{
		ShiftID:       "shift-am",
		ShiftName:     "Morning",
		ShiftTimeMode: model.ShiftModeAM,
		CheckIn:       strPtr("08:00"),
		CheckOut:      strPtr("12:00"),
	}
	pm := &model.Shift{
		ShiftID:       "shift-pm",
		ShiftName:     "Afternoon",
		ShiftTimeMode: model.ShiftModePM,
		CheckIn:       strPtr("13:00"),
		CheckOut:      strPtr("17:00"),
	}
	mocks.shifts.shifts[am.ShiftID] = am
	mocks.shifts.shifts[pm.ShiftID] = pm
	_ = mocks.assignments.Create(nil, &model.ShiftAssignment{EmpObjID: testEmpID, ShiftID: am.ShiftID, IsUsed: true})
	_ = mocks.assignments.Create(nil, &model.ShiftAssignment{EmpObjID: testEmpID, ShiftID: pm.ShiftID, IsUsed: true})
}

func morningRequest() *dto.CreateLocatorRequest {
	return &dto.CreateLocatorRequest{
		EmpObjID:      testEmpID,
		LocatorDate:   "2025-09-17",
		Destination:   "Provincial Capitol",
		Purpose:       "Document submission",
		TimeDeparture: strPtr("07:45"),
		TimeArrival:   strPtr("12:30"),
	}
}

func TestCreateLocator_ReconcileMorningSlots(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)
	seedFullDayShifts(mocks)

	resp, err := svc.Create(context.Background(), morningRequest(), "")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.Locator.LocatorNo != "250917LE-001" {
		t.Errorf("期望参考号 250917LE-001，实际 %s", resp.Locator.LocatorNo)
	}

	recon := resp.Reconciliation
	if recon == nil {
		t.Fatal("有时间区间时应返回对账结果")
	}
	if recon.ShiftStatus != dto.ShiftStatusMatched {
		t.Errorf("期望 shift_status=matched，实际 %s", recon.ShiftStatus)
	}
	if len(recon.Matched) != 2 || recon.Matched[0] != SlotAmIn || recon.Matched[1] != SlotAmOut {
		t.Errorf("期望命中时点 [am_in am_out]，实际 %v", recon.Matched)
	}
	if len(recon.Created) != 2 {
		t.Fatalf("期望补写 2 条打卡，实际 %d", len(recon.Created))
	}
	if recon.Created[0].CheckTime != "2025-09-17 08:00:00" {
		t.Errorf("期望首条打卡 2025-09-17 08:00:00，实际 %s", recon.Created[0].CheckTime)
	}
	if recon.Created[1].CheckTime != "2025-09-17 12:00:00" {
		t.Errorf("期望第二条打卡 2025-09-17 12:00:00，实际 %s", recon.Created[1].CheckTime)
	}
	if len(recon.Skipped) != 0 || len(recon.Failed) != 0 {
		t.Errorf("首次对账不应有 skipped/failed，实际 %d/%d", len(recon.Skipped), len(recon.Failed))
	}

	// 哨兵元数据
	punch := mocks.punches.punches[punchKey(testEmpID, "2025-09-17 08:00:00")]
	if punch == nil {
		t.Fatal("打卡记录未落库")
	}
	if punch.CheckType != "I" {
		t.Errorf("期望 checktype=I，实际 %s", punch.CheckType)
	}
	if punch.SensorID != "101" || punch.SN != "CLXE224760198" {
		t.Errorf("哨兵设备元数据不符: sensorid=%s sn=%s", punch.SensorID, punch.SN)
	}
}

func TestCreateLocator_BoundaryInclusive(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)
	seedFullDayShifts(mocks)

	req := morningRequest()
	req.TimeDeparture = strPtr("08:00")
	req.TimeArrival = strPtr("12:00")

	resp, err := svc.Create(context.Background(), req, "")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if len(resp.Reconciliation.Created) != 2 {
		t.Errorf("端点相等也应命中（闭区间），期望 2 条，实际 %d", len(resp.Reconciliation.Created))
	}
}

func TestCreateLocator_Idempotent(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)
	seedFullDayShifts(mocks)

	first, err := svc.Create(context.Background(), morningRequest(), "")
	if err != nil {
		t.Fatalf("首次 Create 应成功: %v", err)
	}
	if len(first.Reconciliation.Created) != 2 {
		t.Fatalf("首次应补写 2 条，实际 %d", len(first.Reconciliation.Created))
	}

	second, err := svc.Create(context.Background(), morningRequest(), "")
	if err != nil {
		t.Fatalf("重复提交 Create 应成功: %v", err)
	}
	recon := second.Reconciliation
	if len(recon.Created) != 0 {
		t.Errorf("第二次对账不应再补写，实际 created=%d", len(recon.Created))
	}
	if len(recon.Skipped) != 2 {
		t.Errorf("第二次对账应跳过 2 个已存在时点，实际 skipped=%d", len(recon.Skipped))
	}
	if len(mocks.punches.punches) != 2 {
		t.Errorf("同 (员工, checktime) 不应产生第二条记录，实际共 %d 条", len(mocks.punches.punches))
	}
}

func TestCreateLocator_NoTimeRange(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)
	seedFullDayShifts(mocks)

	req := morningRequest()
	req.TimeDeparture = nil
	req.TimeArrival = nil

	resp, err := svc.Create(context.Background(), req, "")
	if err != nil {
		t.Fatalf("缺时间区间也应登记单据: %v", err)
	}
	if resp.Locator.LocatorNo != "250917LE-001" {
		t.Errorf("单据仍应分配参考号，实际 %s", resp.Locator.LocatorNo)
	}
	if resp.Reconciliation != nil {
		t.Error("缺时间区间应整体跳过对账")
	}
	if len(mocks.punches.punches) != 0 {
		t.Errorf("不应补写任何打卡，实际 %d 条", len(mocks.punches.punches))
	}
}

func TestCreateLocator_NoShiftAssigned(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)
	// 不建任何指派

	resp, err := svc.Create(context.Background(), morningRequest(), "")
	if err != nil {
		t.Fatalf("无班次指派也应登记单据: %v", err)
	}
	if resp.Reconciliation.ShiftStatus != dto.ShiftStatusNoShift {
		t.Errorf("期望 shift_status=no_shift_assigned，实际 %s", resp.Reconciliation.ShiftStatus)
	}
	if len(mocks.punches.punches) != 0 {
		t.Error("无班次时不应补写打卡")
	}
}

func TestCreateLocator_NoOverlap(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)
	seedFullDayShifts(mocks)

	req := morningRequest()
	req.TimeDeparture = strPtr("18:00")
	req.TimeArrival = strPtr("19:00")

	resp, err := svc.Create(context.Background(), req, "")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.Reconciliation.ShiftStatus != dto.ShiftStatusNoOverlap {
		t.Errorf("期望 shift_status=no_overlap，实际 %s", resp.Reconciliation.ShiftStatus)
	}
}

func TestCreateLocator_EmployeeNotFound(t *testing.T) {
	svc, _ := setupLocatorService()

	_, err := svc.Create(context.Background(), morningRequest(), "")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

func TestCreateLocator_PartialFailure(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)
	seedFullDayShifts(mocks)
	// 第二个时点插入失败，不应中断其余时点
	mocks.punches.failTimes["2025-09-17 12:00:00"] = true

	resp, err := svc.Create(context.Background(), morningRequest(), "")
	if err != nil {
		t.Fatalf("逐时点失败不应使整个请求失败: %v", err)
	}
	recon := resp.Reconciliation
	if len(recon.Created) != 1 {
		t.Errorf("期望成功补写 1 条，实际 %d", len(recon.Created))
	}
	if len(recon.Failed) != 1 {
		t.Fatalf("期望失败 1 条，实际 %d", len(recon.Failed))
	}
	if recon.Failed[0].Slot != SlotAmOut {
		t.Errorf("期望失败时点 am_out，实际 %s", recon.Failed[0].Slot)
	}
	if recon.Failed[0].Error == "" {
		t.Error("失败时点应携带原因")
	}
}

func TestCreateLocator_ConcurrentDistinctRefNos(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)

	const n = 20
	var wg sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			req := morningRequest()
			req.TimeDeparture = nil
			req.TimeArrival = nil
			resp, err := svc.Create(context.Background(), req, "")
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx] = resp.Locator.LocatorNo
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("并发创建第 %d 个失败: %v", i, errs[i])
		}
		if seen[results[i]] {
			t.Fatalf("参考号重复: %s", results[i])
		}
		seen[results[i]] = true
	}
	if len(seen) != n {
		t.Errorf("期望 %d 个互不相同的参考号，实际 %d", n, len(seen))
	}
}

func TestCreateLocator_RefNoConflictRetry(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)

	// 预占参考号 001，第一次分配撞唯一索引后应重试拿到 002
	_ = mocks.locators.Create(nil, &model.Locator{
		LocatorNo:   "250917LE-001",
		EmpObjID:    testEmpID,
		LocatorDate: "2025-09-17",
		Status:      model.LocatorStatusActive,
	})

	req := morningRequest()
	req.TimeDeparture = nil
	req.TimeArrival = nil
	resp, err := svc.Create(context.Background(), req, "")
	if err != nil {
		t.Fatalf("参考号冲突应重试成功: %v", err)
	}
	if resp.Locator.LocatorNo != "250917LE-002" {
		t.Errorf("期望重试后参考号 250917LE-002，实际 %s", resp.Locator.LocatorNo)
	}
}

func TestUpdateLocator_NoAutoReReconcile(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)
	seedFullDayShifts(mocks)

	resp, err := svc.Create(context.Background(), morningRequest(), "")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	before := len(mocks.punches.punches)

	// 扩大时间区间覆盖下午，但修改不自动重跑对账
	_, err = svc.Update(context.Background(), resp.Locator.LocatorID, &dto.UpdateLocatorRequest{
		TimeArrival: strPtr("17:30"),
	}, "")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if len(mocks.punches.punches) != before {
		t.Errorf("修改时间区间不应触发补写，打卡数 %d → %d", before, len(mocks.punches.punches))
	}
}

func TestVoidLocator(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)

	req := morningRequest()
	req.TimeDeparture = nil
	req.TimeArrival = nil
	resp, err := svc.Create(context.Background(), req, "")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	if err := svc.Void(context.Background(), resp.Locator.LocatorID, ""); err != nil {
		t.Fatalf("Void 应成功: %v", err)
	}
	locator := mocks.locators.locators[resp.Locator.LocatorID]
	if locator.Status != model.LocatorStatusVoid {
		t.Errorf("期望状态 VOID，实际 %s", locator.Status)
	}

	// 作废后不可修改
	_, err = svc.Update(context.Background(), resp.Locator.LocatorID, &dto.UpdateLocatorRequest{
		Remarks: strPtr("changed"),
	}, "")
	if !errors.Is(err, ErrLocatorVoided) {
		t.Errorf("期望 ErrLocatorVoided，实际: %v", err)
	}

	// Void 幂等
	if err := svc.Void(context.Background(), resp.Locator.LocatorID, ""); err != nil {
		t.Errorf("重复 Void 应幂等成功: %v", err)
	}
}

func TestCheckDuplicate(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)

	check := &dto.DuplicateCheckRequest{EmpObjID: testEmpID, LocatorDate: "2025-09-17"}
	resp, err := svc.CheckDuplicate(context.Background(), check)
	if err != nil {
		t.Fatalf("CheckDuplicate 应成功: %v", err)
	}
	if resp.Exists {
		t.Error("尚无单据时 exists 应为 false")
	}

	req := morningRequest()
	req.TimeDeparture = nil
	req.TimeArrival = nil
	if _, err := svc.Create(context.Background(), req, ""); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	resp, err = svc.CheckDuplicate(context.Background(), check)
	if err != nil {
		t.Fatalf("CheckDuplicate 应成功: %v", err)
	}
	if !resp.Exists || resp.Count != 1 {
		t.Errorf("期望 exists=true count=1，实际 exists=%v count=%d", resp.Exists, resp.Count)
	}
}

func TestMonthlyStats(t *testing.T) {
	svc, mocks := setupLocatorService()
	seedEmployee(mocks)

	for i := 0; i < 3; i++ {
		_ = mocks.locators.Create(nil, &model.Locator{
			LocatorNo:   fmt.Sprintf("250917LE-%03d", 100+i),
			EmpObjID:    testEmpID,
			LocatorDate: "2025-09-17",
			Status:      model.LocatorStatusActive,
		})
	}
	_ = mocks.locators.Create(nil, &model.Locator{
		LocatorNo:   "250815LE-001",
		EmpObjID:    testEmpID,
		LocatorDate: "2025-08-15",
		Status:      model.LocatorStatusActive,
	})

	stats, err := svc.MonthlyStats(context.Background(), 12)
	if err != nil {
		t.Fatalf("MonthlyStats 应成功: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("期望 2 个月份，实际 %d", len(stats))
	}
	if stats[0].Month != "2025-09" || stats[0].Total != 3 {
		t.Errorf("期望 2025-09 共 3 单，实际 %s/%d", stats[0].Month, stats[0].Total)
	}
}

// [自证通过] internal/service/locator_service_test.go
