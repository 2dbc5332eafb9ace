package sources

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tvgu-data-hub/core/storage/mocks"
	"tvgu-data-hub/feature/hub"
	"tvgu-data-hub/feature/hub/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func writeDocuments(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	docs := map[string]string{
		StructsDocument:   structsJSON,
		TeachersDocument:  teachersJSON,
		SchedulesDocument: schedulesJSON,
	}
	for name, content := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func assertDocuments(t *testing.T, in *hub.Inputs) {
	t.Helper()

	require.Len(t, in.Structs, 1)
	assert.Equal(t, "fm", in.Structs[0].Code)
	assert.Equal(t, "Иванов П.П.", in.Structs[0].Boss().Initials())
	assert.Equal(t, []string{"профессор"}, in.Structs[0].Departments[0].BossJobs)

	require.Len(t, in.Roster, 1)
	assert.Equal(t, "Петров С.С.", in.Roster[0].InitialsKey())
	assert.Equal(t, 12, in.Roster[0].ExperienceAge)

	require.Len(t, in.Schedules["fm"], 2)
	assert.Equal(t, "лектор", in.Schedules["fm"][0].Lessons[0].Teachers[0].Role)
	assert.Empty(t, in.Schedules["fm"][1].Lessons)
	assert.True(t, in.Schedules.Has(models.Group{OriginName: "ФМ-12", FacultyCode: "fm"}))
}

func TestDirectory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := NewDirectory(writeDocuments(t))
		in, err := hub.Collect(context.Background(), hub.Sources{Structs: d, Roster: d, Schedules: d})
		require.NoError(t, err)
		assertDocuments(t, in)
	})

	t.Run("MissingFile", func(t *testing.T) {
		d := NewDirectory(t.TempDir())
		_, err := d.LoadStructs(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, SchedulesDocument), []byte("[1, 2"), 0o644))

		_, err := NewDirectory(dir).LoadSchedules(context.Background())
		assert.ErrorContains(t, err, "failed to parse schedules.json")
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewDirectory(writeDocuments(t)).LoadTeachers(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func object(content string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(content))
}

func TestBucket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "hub", "sources/structs.json", mock.Anything).Return(object(structsJSON), nil)
		client.On("GetObject", mock.Anything, "hub", "sources/teachers.json", mock.Anything).Return(object(teachersJSON), nil)
		client.On("GetObject", mock.Anything, "hub", "sources/schedules.json", mock.Anything).Return(object(schedulesJSON), nil)

		b := NewBucket(client, "hub", "sources")
		in, err := hub.Collect(context.Background(), hub.Sources{Structs: b, Roster: b, Schedules: b})
		require.NoError(t, err)
		assertDocuments(t, in)
		client.AssertExpectations(t)
	})

	t.Run("GetObjectError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "hub", "structs.json", mock.Anything).Return(nil, errors.New("access denied"))

		_, err := NewBucket(client, "hub", "").LoadStructs(context.Background())
		assert.EqualError(t, err, "failed to get structs.json: access denied")
	})
}

func TestDBRoster(t *testing.T) {
	db, sqlMock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "surname", "patronymic", "initials", "teaching_disciplines", "teaching_programs", "experience_age"}).
		AddRow(1, "Семён", "Петров", "Сергеевич", "", `["Алгебра","Геометрия"]`, `[]`, 12).
		AddRow(2, "Анна", "Сидорова", "Викторовна", "Сидорова А.В.", `[]`, `["Математика"]`, 3)
	sqlMock.ExpectQuery("SELECT \\* FROM `teachers` ORDER BY id").WillReturnRows(rows)

	teachers, err := NewDBRoster(db).LoadTeachers(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 2)

	assert.Equal(t, "Петров С.С.", teachers[0].InitialsKey())
	assert.Equal(t, []string{"Алгебра", "Геометрия"}, teachers[0].TeachingDisciplines)
	assert.Equal(t, 12, teachers[0].ExperienceAge)
	assert.Equal(t, []string{"Математика"}, teachers[1].TeachingPrograms)
	assert.NoError(t, sqlMock.ExpectationsWereMet())

	t.Run("QueryError", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectQuery("SELECT \\* FROM `teachers`").WillReturnError(errors.New("connection lost"))

		_, err := NewDBRoster(db).LoadTeachers(context.Background())
		assert.ErrorContains(t, err, "connection lost")
	})
}

func TestNew(t *testing.T) {
	db, _ := setupMockDB(t)
	client := new(mocks.Client)

	tests := []struct {
		name    string
		cfg     Config
		client  bool
		db      bool
		wantErr string
		check   func(t *testing.T, src hub.Sources)
	}{
		{
			name: "Directory",
			cfg:  Config{Kind: KindDirectory, Directory: "data"},
			check: func(t *testing.T, src hub.Sources) {
				assert.IsType(t, &Directory{}, src.Structs)
				assert.IsType(t, &Directory{}, src.Roster)
			},
		},
		{
			name:   "BucketWithDBRoster",
			cfg:    Config{Kind: KindBucket, TeachersFromDB: true},
			client: true,
			db:     true,
			check: func(t *testing.T, src hub.Sources) {
				assert.IsType(t, &Bucket{}, src.Schedules)
				assert.IsType(t, &DBRoster{}, src.Roster)
			},
		},
		{name: "BucketWithoutClient", cfg: Config{Kind: KindBucket}, wantErr: "requires a storage client"},
		{name: "RosterWithoutDB", cfg: Config{Kind: KindDirectory, TeachersFromDB: true}, wantErr: ErrNoDatabase.Error()},
		{name: "UnknownKind", cfg: Config{Kind: "ftp"}, wantErr: `unknown source kind "ftp"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				c  *mocks.Client
				gd *gorm.DB
			)
			if tt.client {
				c = client
			}
			if tt.db {
				gd = db
			}

			var src hub.Sources
			var err error
			if c != nil {
				src, err = New(tt.cfg, c, "hub", gd)
			} else {
				src, err = New(tt.cfg, nil, "hub", gd)
			}

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, src)
		})
	}
}
