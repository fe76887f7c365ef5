package grading

type LetterGrade string

const (
	GradeA LetterGrade = "A"
	GradeB LetterGrade = "B"
	GradeC LetterGrade = "C"
	GradeD LetterGrade = "D"
	GradeE LetterGrade = "E"
)

var gradeFloors = []struct {
	min   int
	grade LetterGrade
}{
	{85, GradeA},
	{70, GradeB},
	{55, GradeC},
	{40, GradeD},
}

func ToLetterGrade(score int) LetterGrade {
	for _, f := range gradeFloors {
		if score >= f.min {
			return f.grade
		}
	}
	return GradeE
}
