package teachers

import (
	"testing"

	"tvgu-data-hub/feature/hub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessonOf(subject string) models.LessonWithGroups {
	return models.LessonWithGroups{SubjectName: subject}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		teacher models.Teacher
		want    float64
	}{
		{
			name:    "DisciplineMatch",
			subject: "Алгебра",
			teacher: models.Teacher{TeachingDisciplines: []string{"История", "Алгебра"}},
			want:    50,
		},
		{
			name:    "ProgramMatch",
			subject: "Алгебра",
			teacher: models.Teacher{TeachingPrograms: []string{"Алгебра и геометрия"}},
			want:    20,
		},
		{
			name:    "EducationMatch",
			subject: "Математика",
			teacher: models.Teacher{DirectionEducation: "Математика", LevelEducation: "Математика"},
			want:    14,
		},
		{
			name:    "ExperienceCapped",
			subject: "",
			teacher: models.Teacher{ExperienceAge: 55, TeachingDisciplines: []string{"Алгебра"}},
			want:    4,
		},
		{
			name:    "ExperienceOnly",
			subject: "Алгебра",
			teacher: models.Teacher{ExperienceAge: 12},
			want:    1.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(lessonOf(tt.subject), tt.teacher), 0.0001)
		})
	}
}

func TestRank_PrefersDiscipline(t *testing.T) {
	historian := models.Teacher{Surname: "Иванов", Name: "Павел", TeachingDisciplines: []string{"История"}, ExperienceAge: 30}
	algebraist := models.Teacher{Surname: "Иванов", Name: "Пётр", TeachingDisciplines: []string{"Алгебра"}}

	ranked := Rank(lessonOf("Алгебра"), []models.Teacher{historian, algebraist}, true)
	require.Len(t, ranked, 2)
	assert.Equal(t, algebraist, ranked[0].Teacher)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	first := models.Teacher{Surname: "А", Name: "Первый"}
	second := models.Teacher{Surname: "А", Name: "Второй"}

	ranked := Rank(lessonOf("Алгебра"), []models.Teacher{first, second}, true)
	require.Len(t, ranked, 2)
	assert.Equal(t, first, ranked[0].Teacher)
}

func TestRank_SingleCandidate(t *testing.T) {
	only := models.Teacher{Surname: "Иванов"}

	ranked := Rank(lessonOf("Алгебра"), []models.Teacher{only}, true)
	require.Len(t, ranked, 1)
	assert.Equal(t, SingleCandidateScore, ranked[0].Score)

	ranked = Rank(lessonOf("Алгебра"), []models.Teacher{only}, false)
	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].Score)

	assert.Empty(t, Rank(lessonOf("Алгебра"), nil, true))
}
