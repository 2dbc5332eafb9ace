package sources

const (
	structsJSON = `[
  {
    "name": "Факультет математики",
    "code": "fm",
    "boss_surname": "Иванов",
    "boss_name": "Пётр",
    "boss_patronymic": "Петрович",
    "departments": [{"name": "Кафедра алгебры", "boss_jobs": ["профессор"]}],
    "groups": ["ФМ-11"]
  }
]`

	teachersJSON = `[
  {
    "name": "Семён",
    "surname": "Петров",
    "patronymic": "Сергеевич",
    "initials": "Петров С.С.",
    "teaching_disciplines": ["Алгебра"],
    "teaching_programs": [],
    "experience_age": 12
  }
]`

	schedulesJSON = `{
  "fm": [
    {
      "group": {"name": "ФМ-11", "origin_name": "ФМ-11", "faculty_code": "fm", "course": 1},
      "lessons": [
        {
          "week_mark": 0,
          "week_day": 1,
          "lesson_number": 2,
          "subject_name": "Алгебра",
          "subject_type": "Лекция",
          "place": "ауд. 101",
          "teachers": [{"initials": "Петров С.С.", "role": "лектор"}]
        }
      ]
    },
    {
      "group": {"name": "ФМ-12", "origin_name": "ФМ-12", "faculty_code": "fm"},
      "lessons": []
    }
  ]
}`
)
