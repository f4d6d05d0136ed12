package service

import (
	"HelpDesk/config"
	"HelpDesk/internal/repo"
	"HelpDesk/internal/storage"
	"HelpDesk/model"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

// The MySQL-backed tests only run when HELPDESK_TEST_DB is set; the
// plain unit tests in this package never touch the database.
func TestMain(m *testing.M) {
	if os.Getenv("HELPDESK_TEST_DB") != "" {
		config.InitConfig()
		repo.InitMysqlTest()
		repo.InitRedis()
	}
	os.Exit(m.Run())
}

func requireDb(t *testing.T) {
	t.Helper()
	if repo.Db == nil {
		t.Skip("set HELPDESK_TEST_DB to run database tests")
	}
}

func cleanTables(t *testing.T) {
	t.Helper()
	repo.Db.Exec("SET FOREIGN_KEY_CHECKS = 0")
	tables := []string{
		"files", "group_order_services", "results", "orders", "group_orders",
		"consultations", "notes", "recommendations", "versions",
		"theme_consultations", "users", "departments", "positions",
		"organizations", "services", "roles",
	}
	for _, table := range tables {
		if err := repo.Db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean %s failed: %v", table, err)
		}
	}
	repo.Db.Exec("SET FOREIGN_KEY_CHECKS = 1")

	if err := SeedRoles(); err != nil {
		t.Fatalf("seed roles failed: %v", err)
	}
}

func createTestUser(t *testing.T, prefix string, role model.RoleName) *model.User {
	t.Helper()
	organization := model.Organization{Name: "test org"}
	if err := repo.Db.Where("name = ?", organization.Name).FirstOrCreate(&organization).Error; err != nil {
		t.Fatal(err)
	}
	department := model.Department{Name: "test dept", OrganizationID: &organization.ID}
	if err := repo.Db.Where("name = ?", department.Name).FirstOrCreate(&department).Error; err != nil {
		t.Fatal(err)
	}
	position := model.Position{Name: "test position"}
	if err := repo.Db.Where("name = ?", position.Name).FirstOrCreate(&position).Error; err != nil {
		t.Fatal(err)
	}
	roleRow, err := FindRoleByName(role)
	if err != nil {
		t.Fatal(err)
	}
	user := &model.User{
		UserName:     fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano()),
		Password:     "123456",
		Name:         prefix,
		RoleID:       roleRow.ID,
		DepartmentID: department.ID,
		PositionID:   position.ID,
	}
	if err := CreateUser(user); err != nil {
		t.Fatal(err)
	}
	user.Role = *roleRow
	return user
}

func TestOrderCreatorEditGuard(t *testing.T) {
	requireDb(t)
	cleanTables(t)

	creator := createTestUser(t, "edit_creator", model.RoleUser)
	performer := createTestUser(t, "edit_performer", model.RoleModerator)

	order, err := CreateOrder(creator.ID, "printer broken", "no toner")
	if err != nil {
		t.Fatal(err)
	}

	// Ungrouped: the creator may edit.
	if _, err := UpdateOrder(order.ID, creator.ID, "printer broken", "no toner at all"); err != nil {
		t.Fatalf("edit of ungrouped order failed: %v", err)
	}
	// Another user may not.
	if _, err := UpdateOrder(order.ID, performer.ID, "x", "y"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign edit: got %v, want ErrNotFound", err)
	}

	group, err := CreateGroupOrder("printers", "printer batch", performer.ID)
	if err != nil {
		t.Fatal(err)
	}
	if err := AttachOrder(order.ID, group.ID); err != nil {
		t.Fatal(err)
	}

	// Grouped: the creator loses edit rights.
	if _, err := UpdateOrder(order.ID, creator.ID, "x", "y"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("edit of grouped order: got %v, want ErrNotFound", err)
	}
	// Re-attachment anywhere is refused.
	if err := AttachOrder(order.ID, group.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("second attach: got %v, want ErrConflict", err)
	}
}

func TestGroupOrderStatusLifecycle(t *testing.T) {
	requireDb(t)
	cleanTables(t)

	performer := createTestUser(t, "status_performer", model.RoleModerator)
	regular := createTestUser(t, "status_regular", model.RoleUser)

	// Only moderator-capable users may be performers.
	if _, err := CreateGroupOrder("bad", "", regular.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("regular performer: got %v, want ErrForbidden", err)
	}

	group, err := CreateGroupOrder("network outage", "building B", performer.ID)
	if err != nil {
		t.Fatal(err)
	}
	if group.Status != string(StatusInWork) {
		t.Fatalf("fresh group status = %q", group.Status)
	}

	// Closing without a positive result is refused.
	if _, err := ChangeGroupOrderStatus(group.ID, "closed"); !errors.Is(err, ErrNotClosable) {
		t.Fatalf("close without result: got %v, want ErrNotClosable", err)
	}
	// Selecting the current status is refused.
	if _, err := ChangeGroupOrderStatus(group.ID, "in_work"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("same status: got %v, want ErrNotFound", err)
	}
	// "new" is derived and may never be stored.
	if _, err := ChangeGroupOrderStatus(group.ID, "new"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("store new: got %v, want ErrNotFound", err)
	}

	if _, err := AddResult(group.ID, "switch replaced", "", true); err != nil {
		t.Fatal(err)
	}
	closed, err := ChangeGroupOrderStatus(group.ID, "closed")
	if err != nil {
		t.Fatalf("close with positive result: %v", err)
	}
	if closed.Status != string(StatusClosed) {
		t.Fatalf("status = %q", closed.Status)
	}
}

func TestCompleteUploadAndDownload(t *testing.T) {
	requireDb(t)
	cleanTables(t)
	uploadTestConfig(t)

	store, err := storage.NewLocalStore(config.UploadConfigInstance.StoreDir)
	if err != nil {
		t.Fatal(err)
	}
	prevStore := storage.Default
	storage.Default = store
	t.Cleanup(func() { storage.Default = prevStore })

	creator := createTestUser(t, "upload_creator", model.RoleUser)
	order, err := CreateOrder(creator.ID, "vpn broken", "cannot connect")
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	dir, err := DatedStagingDir(time.Now())
	if err != nil {
		t.Fatal(err)
	}

	content := "0123456789abcdef"
	req := chunkReq("dl_upl1", "notes.txt", 0, 0, 1, int64(len(content)))
	if err := WriteChunk(dir, req, strings.NewReader(content)); err != nil {
		t.Fatal(err)
	}
	file, err := CompleteUpload(ctx, dir, req, order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if file.OrderID != order.ID || file.TotalSize != int64(len(content)) {
		t.Fatalf("registered file %+v", file)
	}
	// Promotion moves the staging file, it does not copy it.
	if _, err := os.Stat(StagingPath(dir, req)); !os.IsNotExist(err) {
		t.Fatalf("staging file still present: %v", err)
	}

	if _, err := GetFileByHash(ctx, "nosuchhash"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown hash: got %v, want ErrNotFound", err)
	}

	found, err := GetFileByHash(ctx, file.Hash)
	if err != nil {
		t.Fatal(err)
	}
	body, info, err := OpenFile(ctx, found)
	if err != nil {
		t.Fatal(err)
	}
	defer body.Close()
	got, err := io.ReadAll(body)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Fatalf("downloaded %q, want %q", got, content)
	}
	if info.Size != int64(len(content)) {
		t.Fatalf("info size = %d", info.Size)
	}

	// A declared total disagreeing with the bytes on disk fails the
	// completion and keeps the partial in staging.
	short := chunkReq("dl_upl2", "notes.txt", 0, 0, 1, 99)
	if err := WriteChunk(dir, short, strings.NewReader(content)); err != nil {
		t.Fatal(err)
	}
	if _, err := CompleteUpload(ctx, dir, short, order.ID); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("size mismatch: got %v, want ErrSizeMismatch", err)
	}
	if _, err := os.Stat(StagingPath(dir, short)); err != nil {
		t.Fatalf("partial removed after mismatch: %v", err)
	}

	// The per-order file cap applies at completion.
	config.UploadConfigInstance.MaxFilesPerOrder = 1
	capped := chunkReq("dl_upl3", "more.txt", 0, 0, 1, int64(len(content)))
	if err := WriteChunk(dir, capped, strings.NewReader(content)); err != nil {
		t.Fatal(err)
	}
	if _, err := CompleteUpload(ctx, dir, capped, order.ID); !errors.Is(err, ErrTooManyFiles) {
		t.Fatalf("file cap: got %v, want ErrTooManyFiles", err)
	}

	// An unknown order fails before anything moves out of staging.
	orphan := chunkReq("dl_upl4", "ghost.txt", 0, 0, 1, int64(len(content)))
	if err := WriteChunk(dir, orphan, strings.NewReader(content)); err != nil {
		t.Fatal(err)
	}
	if _, err := CompleteUpload(ctx, dir, orphan, order.ID+1000); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing order: got %v, want ErrNotFound", err)
	}
	if _, err := os.Stat(StagingPath(dir, orphan)); err != nil {
		t.Fatalf("staging file moved despite missing order: %v", err)
	}
}

func TestDeleteOrderRemovesFiles(t *testing.T) {
	requireDb(t)
	cleanTables(t)

	creator := createTestUser(t, "delete_creator", model.RoleUser)
	order, err := CreateOrder(creator.ID, "attachments", "with files")
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	file := &model.File{
		OriginalName: "screenshot.png",
		Hash:         fmt.Sprintf("hash%d", time.Now().UnixNano()),
		Path:         "files/test/screenshot.png",
		TotalSize:    12,
		OrderID:      order.ID,
	}
	if err := RegisterFile(ctx, file); err != nil {
		t.Fatal(err)
	}

	if err := DeleteOrder(ctx, order.ID, creator.ID); err != nil {
		t.Fatal(err)
	}

	var fileCount int64
	if err := repo.Db.Model(&model.File{}).Where("order_id = ?", order.ID).Count(&fileCount).Error; err != nil {
		t.Fatal(err)
	}
	if fileCount != 0 {
		t.Fatalf("file rows left: %d", fileCount)
	}
	if _, err := GetOrderWithFiles(order.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("order still present: %v", err)
	}
}
