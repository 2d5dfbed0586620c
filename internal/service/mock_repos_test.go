package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gorm.io/gorm"

	"hr-attendance/backend/internal/model"
	"hr-attendance/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id 与 username 双索引
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.UserID] = user
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	m.users[user.Username] = user
	return nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	emps map[string]*model.Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{emps: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := m.emps[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context, _ string, activeOnly bool, offset, limit int) ([]model.Employee, int64, error) {
	var all []model.Employee
	for _, e := range m.emps {
		if activeOnly && !e.IsActive {
			continue
		}
		all = append(all, *e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Surname < all[j].Surname })
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[string]*model.Shift
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*model.Shift)}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ShiftID == "" {
		shift.ShiftID = "shift-" + shift.ShiftName
	}
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) List(_ context.Context, offset, limit int) ([]model.Shift, int64, error) {
	var all []model.Shift
	for _, s := range m.shifts {
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ShiftName < all[j].ShiftName })
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id string) error {
	delete(m.shifts, id)
	return nil
}

// ── Mock ShiftAssignmentRepository ──

type mockAssignmentRepo struct {
	assignments []*model.ShiftAssignment // 按插入顺序保存
	shifts      *mockShiftRepo
}

func newMockAssignmentRepo(shifts *mockShiftRepo) *mockAssignmentRepo {
	return &mockAssignmentRepo{shifts: shifts}
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.ShiftAssignment) error {
	if a.AssignmentID == "" {
		a.AssignmentID = fmt.Sprintf("assign-%d", len(m.assignments)+1)
	}
	m.assignments = append(m.assignments, a)
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id string) error {
	for i, a := range m.assignments {
		if a.AssignmentID == id {
			m.assignments = append(m.assignments[:i], m.assignments[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListActiveByEmployee 最新指派在前，模拟 created_at DESC 排序
func (m *mockAssignmentRepo) ListActiveByEmployee(_ context.Context, empObjID string) ([]model.ShiftAssignment, error) {
	var result []model.ShiftAssignment
	for i := len(m.assignments) - 1; i >= 0; i-- {
		a := m.assignments[i]
		if a.EmpObjID != empObjID || !a.IsUsed {
			continue
		}
		item := *a
		if s, ok := m.shifts.shifts[a.ShiftID]; ok {
			item.Shift = s
		}
		result = append(result, item)
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListByEmployee(_ context.Context, empObjID string) ([]model.ShiftAssignment, error) {
	var result []model.ShiftAssignment
	for _, a := range m.assignments {
		if a.EmpObjID != empObjID {
			continue
		}
		item := *a
		if s, ok := m.shifts.shifts[a.ShiftID]; ok {
			item.Shift = s
		}
		result = append(result, item)
	}
	return result, nil
}

func (m *mockAssignmentRepo) CountActiveByShift(_ context.Context, shiftID string) (int64, error) {
	var n int64
	for _, a := range m.assignments {
		if a.ShiftID == shiftID && a.IsUsed {
			n++
		}
	}
	return n, nil
}

// ── Mock LocatorRepository ──

type mockLocatorRepo struct {
	mu       sync.Mutex
	locators map[string]*model.Locator
	byNo     map[string]*model.Locator
	seq      int
}

func newMockLocatorRepo() *mockLocatorRepo {
	return &mockLocatorRepo{
		locators: make(map[string]*model.Locator),
		byNo:     make(map[string]*model.Locator),
	}
}

// Create 模拟 locator_no 唯一索引：重复参考号返回 gorm.ErrDuplicatedKey
func (m *mockLocatorRepo) Create(_ context.Context, locator *model.Locator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byNo[locator.LocatorNo]; exists {
		return gorm.ErrDuplicatedKey
	}
	if locator.LocatorID == "" {
		m.seq++
		locator.LocatorID = fmt.Sprintf("locator-%d", m.seq)
	}
	m.locators[locator.LocatorID] = locator
	m.byNo[locator.LocatorNo] = locator
	return nil
}

func (m *mockLocatorRepo) GetByID(_ context.Context, id string) (*model.Locator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.locators[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocatorRepo) GetByNo(_ context.Context, no string) (*model.Locator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.byNo[no]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocatorRepo) List(_ context.Context, q repository.LocatorQuery, offset, limit int) ([]model.Locator, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []model.Locator
	for _, l := range m.locators {
		if q.EmpObjID != "" && l.EmpObjID != q.EmpObjID {
			continue
		}
		if q.DateFrom != "" && l.LocatorDate < q.DateFrom {
			continue
		}
		if q.DateTo != "" && l.LocatorDate > q.DateTo {
			continue
		}
		if q.Status != "" && l.Status != q.Status {
			continue
		}
		all = append(all, *l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].LocatorNo > all[j].LocatorNo })
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

func (m *mockLocatorRepo) Update(_ context.Context, locator *model.Locator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locators[locator.LocatorID] = locator
	m.byNo[locator.LocatorNo] = locator
	return nil
}

func (m *mockLocatorRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.locators[id]; ok {
		delete(m.byNo, l.LocatorNo)
		delete(m.locators, id)
	}
	return nil
}

func (m *mockLocatorRepo) CountByEmployeeAndDate(_ context.Context, empObjID, date string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, l := range m.locators {
		if l.EmpObjID == empObjID && l.LocatorDate == date && l.Status == model.LocatorStatusActive {
			n++
		}
	}
	return n, nil
}

func (m *mockLocatorRepo) MonthlyStats(_ context.Context, months int) ([]repository.MonthlyCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[string]int64)
	for _, l := range m.locators {
		if len(l.LocatorDate) >= 7 {
			counts[l.LocatorDate[:7]]++
		}
	}
	var stats []repository.MonthlyCount
	for month, total := range counts {
		stats = append(stats, repository.MonthlyCount{StatMonth: month, Total: total})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].StatMonth > stats[j].StatMonth })
	if len(stats) > months {
		stats = stats[:months]
	}
	return stats, nil
}

// ── Mock PunchRepository ──

type mockPunchRepo struct {
	mu      sync.Mutex
	punches map[string]*model.AttendancePunch // key: emp_objid + "|" + checktime
	// failTimes 指定 checktime 强制插入失败，模拟存储故障
	failTimes map[string]bool
}

func newMockPunchRepo() *mockPunchRepo {
	return &mockPunchRepo{
		punches:   make(map[string]*model.AttendancePunch),
		failTimes: make(map[string]bool),
	}
}

func punchKey(empObjID, checkTime string) string {
	return empObjID + "|" + checkTime
}

func (m *mockPunchRepo) Create(_ context.Context, punch *model.AttendancePunch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTimes[punch.CheckTime] {
		return fmt.Errorf("storage failure")
	}
	key := punchKey(punch.EmpObjID, punch.CheckTime)
	if _, exists := m.punches[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	if punch.PunchID == "" {
		punch.PunchID = "punch-" + key
	}
	m.punches[key] = punch
	return nil
}

func (m *mockPunchRepo) Exists(_ context.Context, empObjID, checkTime string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.punches[punchKey(empObjID, checkTime)]
	return ok, nil
}

func (m *mockPunchRepo) ListByEmployee(_ context.Context, empObjID, timeFrom, timeTo string, offset, limit int) ([]model.AttendancePunch, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []model.AttendancePunch
	for _, p := range m.punches {
		if p.EmpObjID != empObjID {
			continue
		}
		if timeFrom != "" && p.CheckTime < timeFrom {
			continue
		}
		if timeTo != "" && p.CheckTime > timeTo {
			continue
		}
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CheckTime < all[j].CheckTime })
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

// ── Mock SequenceRepository ──

// 与 gorm 实现同契约：计数行补建（ON CONFLICT DO NOTHING）后加锁读取，
// 当日首单并发补建不会产生错误
type mockSequenceRepo struct {
	mu   sync.Mutex
	next map[string]int
}

func newMockSequenceRepo() *mockSequenceRepo {
	return &mockSequenceRepo{next: make(map[string]int)}
}

func (m *mockSequenceRepo) Next(_ context.Context, date string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.next[date]
	if !ok {
		n = 1
	}
	m.next[date] = n + 1
	return n, nil
}

// ── 直通事务执行器 ──

type passthroughTx struct {
	repo *repository.Repository
}

func (t *passthroughTx) Run(_ context.Context, fn func(txRepo *repository.Repository) error) error {
	return fn(t.repo)
}

// ── 测试用 Repository 组装 ──

type testRepos struct {
	users       *mockUserRepo
	emps        *mockEmployeeRepo
	shifts      *mockShiftRepo
	assignments *mockAssignmentRepo
	locators    *mockLocatorRepo
	punches     *mockPunchRepo
	seqs        *mockSequenceRepo
}

func newTestRepository() (*repository.Repository, *testRepos) {
	mocks := &testRepos{
		users:    newMockUserRepo(),
		emps:     newMockEmployeeRepo(),
		shifts:   newMockShiftRepo(),
		locators: newMockLocatorRepo(),
		punches:  newMockPunchRepo(),
		seqs:     newMockSequenceRepo(),
	}
	mocks.assignments = newMockAssignmentRepo(mocks.shifts)

	repo := &repository.Repository{
		User:            mocks.users,
		Employee:        mocks.emps,
		Shift:           mocks.shifts,
		ShiftAssignment: mocks.assignments,
		Locator:         mocks.locators,
		Punch:           mocks.punches,
		Sequence:        mocks.seqs,
	}
	repo.Tx = &passthroughTx{repo: repo}
	return repo, mocks
}

// [自证通过] internal/service/mock_repos_test.go
