package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lynxmind/task-portal/internal/models"
)

type TaskRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TaskRepository
	ctx  context.Context
}

func (suite *TaskRepositoryTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(suite.db.AutoMigrate(&models.Task{}))

	suite.repo = NewTaskRepository(suite.db)
	suite.ctx = context.Background()
}

func (suite *TaskRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskRepositoryTestSuite) createTask(title string, status models.TaskStatus) *models.Task {
	task := &models.Task{
		Title:    title,
		Status:   status,
		Priority: models.TaskPriorityMedium,
	}
	suite.Require().NoError(suite.repo.Create(suite.ctx, task))
	return task
}

func (suite *TaskRepositoryTestSuite) TestList_Empty() {
	tasks, err := suite.repo.List(suite.ctx)
	suite.Require().NoError(err)
	suite.NotNil(tasks)
	suite.Empty(tasks)
}

func (suite *TaskRepositoryTestSuite) TestCreate_AssignsIncreasingIDs() {
	first := suite.createTask("First", models.TaskStatusPending)
	second := suite.createTask("Second", models.TaskStatusPending)

	suite.NotZero(first.ID)
	suite.Greater(second.ID, first.ID)
}

func (suite *TaskRepositoryTestSuite) TestList_InsertionOrder() {
	suite.createTask("A", models.TaskStatusPending)
	suite.createTask("B", models.TaskStatusCompleted)
	suite.createTask("C", models.TaskStatusInProgress)

	tasks, err := suite.repo.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 3)
	suite.Equal("A", tasks[0].Title)
	suite.Equal("B", tasks[1].Title)
	suite.Equal("C", tasks[2].Title)
}

func (suite *TaskRepositoryTestSuite) TestCreate_PersistsDueDateVerbatim() {
	due := "2025-01-01"
	task := &models.Task{
		Title:       "Pay rent",
		Description: "before noon",
		Status:      models.TaskStatusPending,
		Priority:    models.TaskPriorityHigh,
		DueDate:     &due,
	}
	suite.Require().NoError(suite.repo.Create(suite.ctx, task))

	tasks, err := suite.repo.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Require().NotNil(tasks[0].DueDate)
	suite.Equal("2025-01-01", *tasks[0].DueDate)
	suite.Equal("before noon", tasks[0].Description)
	suite.Equal(models.TaskPriorityHigh, tasks[0].Priority)
}

func (suite *TaskRepositoryTestSuite) TestUpdateStatus_OnlyTouchesStatus() {
	task := suite.createTask("Buy milk", models.TaskStatusPending)

	suite.Require().NoError(suite.repo.UpdateStatus(suite.ctx, task.ID, models.TaskStatusCompleted))

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	suite.Equal(models.TaskStatusCompleted, stored.Status)
	suite.Equal("Buy milk", stored.Title)
	suite.Equal(models.TaskPriorityMedium, stored.Priority)
}

func (suite *TaskRepositoryTestSuite) TestUpdateStatus_SameStatusTwice() {
	task := suite.createTask("Buy milk", models.TaskStatusPending)

	suite.Require().NoError(suite.repo.UpdateStatus(suite.ctx, task.ID, models.TaskStatusCompleted))
	suite.Require().NoError(suite.repo.UpdateStatus(suite.ctx, task.ID, models.TaskStatusCompleted))

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	suite.Equal(models.TaskStatusCompleted, stored.Status)
}

func (suite *TaskRepositoryTestSuite) TestUpdateStatus_NotFound() {
	err := suite.repo.UpdateStatus(suite.ctx, 999, models.TaskStatusCompleted)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *TaskRepositoryTestSuite) TestDelete_HardDeletes() {
	task := suite.createTask("Buy milk", models.TaskStatusPending)

	suite.Require().NoError(suite.repo.Delete(suite.ctx, task.ID))

	var count int64
	suite.Require().NoError(suite.db.Unscoped().Model(&models.Task{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *TaskRepositoryTestSuite) TestDelete_NotFoundLeavesStoreUnchanged() {
	suite.createTask("Keep me", models.TaskStatusPending)

	err := suite.repo.Delete(suite.ctx, 999)
	suite.ErrorIs(err, ErrNotFound)

	count, err := suite.repo.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.EqualValues(1, count)
}

func (suite *TaskRepositoryTestSuite) TestDelete_IDsAreNotReused() {
	first := suite.createTask("First", models.TaskStatusPending)
	suite.Require().NoError(suite.repo.Delete(suite.ctx, first.ID))

	second := suite.createTask("Second", models.TaskStatusPending)
	suite.Greater(second.ID, first.ID)
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}

// newMockRepository backs the repository with sqlmock so driver failures can
// be injected.
func newMockRepository(t *testing.T) (TaskRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewTaskRepository(db), mock
}

func TestGormTaskRepository_DriverErrors(t *testing.T) {
	ctx := context.Background()
	diskErr := errors.New("disk I/O error")

	t.Run("list", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT \\* FROM `tasks`").WillReturnError(diskErr)

		tasks, err := repo.List(ctx)
		assert.ErrorIs(t, err, diskErr)
		assert.Nil(t, tasks)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("INSERT INTO `tasks`").WillReturnError(diskErr)

		task := &models.Task{Title: "x", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow}
		err := repo.Create(ctx, task)
		assert.ErrorIs(t, err, diskErr)
		assert.Zero(t, task.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update status", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("UPDATE `tasks` SET `status`").WillReturnError(diskErr)

		err := repo.UpdateStatus(ctx, 1, models.TaskStatusCompleted)
		assert.ErrorIs(t, err, diskErr)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("DELETE FROM `tasks`").WillReturnError(diskErr)

		err := repo.Delete(ctx, 1)
		assert.ErrorIs(t, err, diskErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTaskRepository_ZeroRowsIsNotFound(t *testing.T) {
	ctx := context.Background()

	repo, mock := newMockRepository(t)
	mock.ExpectExec("UPDATE `tasks` SET `status`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `tasks`").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 42, models.TaskStatusPending), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 42), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
