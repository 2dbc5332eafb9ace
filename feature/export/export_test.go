package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tvgu-data-hub/core/database"
	"tvgu-data-hub/core/storage/mocks"
	"tvgu-data-hub/feature/hub/models"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr(v int) *int { return &v }

func sampleDataset() *models.Dataset {
	return &models.Dataset{
		Departments: []models.DepartmentAggregated{
			{ID: 0, Name: "Кафедра алгебры", StructID: 0, BossID: ptr(2), BossJobs: []string{"профессор"}},
		},
		Structs: []models.StructAggregated{
			{ID: 0, Name: "Факультет математики", Code: "fm", BossID: ptr(2), GroupsIDs: []int{0}, DepartmentsIDs: []int{0}},
		},
		Teachers: []models.TeacherEntity{
			models.TeacherAggregated{ID: 0, Teacher: models.Teacher{Surname: "Петров", Name: "Семён", Patronymic: "Сергеевич", TeachingDisciplines: []string{"Алгебра"}}, HasLessons: true},
			models.TeacherSmallAggregated{ID: 1, TeacherSmall: models.TeacherSmall{Initials: "Кузнецов К.К."}, HasLessons: true},
			models.TeacherSmallAggregated{ID: 2, TeacherSmall: models.TeacherSmall{Initials: "Иванов П.П.", Role: "Руководитель: Кафедра алгебры"}},
		},
		Places:   []models.PlaceAggregated{{ID: 0, Name: "ауд. <101>", IsLink: false}},
		Subjects: []models.SubjectAggregated{{ID: 0, Name: "Алгебра", Type: "Лекция"}},
		Groups:   []models.GroupAggregated{{ID: 0, Name: "ФМ-11", OriginName: "ФМ-11", Course: 1, StructID: 0, HasSchedule: true}},
		Lessons: []models.LessonAggregated{
			{ID: 0, WeekMark: 1, WeekDay: 0, LessonNumber: 2, GroupsIDs: []int{0}, TeachersIDs: []int{0, 1}, SubjectID: 0, PlaceID: 0},
		},
	}
}

func TestResolvePath(t *testing.T) {
	now := time.Date(2024, 9, 2, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		output    string
		auto      bool
		directory string
		want      string
		wantErr   error
	}{
		{name: "None", want: ""},
		{name: "Explicit", output: "out.json", want: "out.json"},
		{name: "Auto", auto: true, want: "all_tvgu_data-2024-09-02.json"},
		{name: "AutoInDirectory", auto: true, directory: "dumps", want: filepath.Join("dumps", "all_tvgu_data-2024-09-02.json")},
		{name: "ExplicitInDirectory", output: "out.json", directory: "dumps", want: filepath.Join("dumps", "out.json")},
		{name: "DirectoryOnly", directory: "dumps", want: ""},
		{name: "Conflict", output: "out.json", auto: true, wantErr: ErrConflictingOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.output, tt.auto, tt.directory, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode(t *testing.T) {
	t.Run("KeyOrder", func(t *testing.T) {
		data, err := Encode(sampleDataset(), false)
		require.NoError(t, err)

		s := string(data)
		last := -1
		for _, key := range models.Collections {
			i := bytes.Index(data, []byte(`"`+key+`":`))
			require.GreaterOrEqual(t, i, 0, key)
			assert.Greater(t, i, last, "%s out of order", key)
			last = i
		}
		assert.Contains(t, s, "Кафедра алгебры", "no unicode escaping")
		assert.Contains(t, s, "ауд. <101>", "no html escaping")
		assert.NotContains(t, s, "\n  ")
	})

	t.Run("Prettify", func(t *testing.T) {
		data, err := Encode(sampleDataset(), true)
		require.NoError(t, err)
		assert.Contains(t, string(data), "{\n  \"departments\": [\n    {")
	})

	t.Run("Flattened", func(t *testing.T) {
		data, err := Encode(sampleDataset(), false)
		require.NoError(t, err)

		var decoded map[string][]map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "Петров", decoded["teachers"][0]["surname"])
		assert.Equal(t, "Иванов П.П.", decoded["teachers"][2]["initials"])
		assert.Equal(t, false, decoded["teachers"][2]["has_lessons"])
		assert.Nil(t, decoded["teachers"][2]["surname"])
	})
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")

	require.NoError(t, WriteFile(path, []byte(`{}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "hub", "datasets/all.json", mock.Anything, int64(2),
			mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "application/json" }),
		).Return(minio.UploadInfo{}, nil)

		name, err := Upload(context.Background(), client, "hub", "datasets", "all.json", []byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, "datasets/all.json", name)
		client.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "hub", "all.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("quota exceeded"))

		_, err := Upload(context.Background(), client, "hub", "", "all.json", []byte(`{}`))
		assert.EqualError(t, err, "failed to upload all.json: quota exceeded")
	})
}

func TestPersist(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, Persist(ctx, db, sampleDataset()))
	// A second run replaces rather than duplicates.
	require.NoError(t, Persist(ctx, db, sampleDataset()))

	var teachers []TeacherRow
	require.NoError(t, db.Order("id").Find(&teachers).Error)
	require.Len(t, teachers, 3)
	assert.Equal(t, 0, teachers[0].ID)
	assert.Equal(t, teacherKindFull, teachers[0].Kind)
	assert.Equal(t, "Петров С.С.", teachers[0].Initials)
	assert.Equal(t, []string{"Алгебра"}, teachers[0].TeachingDisciplines)
	assert.Equal(t, teacherKindSmall, teachers[2].Kind)
	assert.Equal(t, "Руководитель: Кафедра алгебры", teachers[2].Role)

	var lessons []LessonRow
	require.NoError(t, db.Find(&lessons).Error)
	require.Len(t, lessons, 1)
	assert.Equal(t, []int{0, 1}, lessons[0].TeachersIDs)

	var structs []StructRow
	require.NoError(t, db.Find(&structs).Error)
	require.Len(t, structs, 1)
	require.NotNil(t, structs[0].BossID)
	assert.Equal(t, 2, *structs[0].BossID)

	t.Run("EmptyDatasetClearsTables", func(t *testing.T) {
		require.NoError(t, Persist(ctx, db, &models.Dataset{}))

		var count int64
		require.NoError(t, db.Model(&LessonRow{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
