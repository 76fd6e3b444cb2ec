package request

type ListJobsQuery struct {
	Status    *string `form:"status"`
	SubjectID *string `form:"subject_id" binding:"omitempty,uuid"`
	Limit     int     `form:"limit"`
	Offset    int     `form:"offset"`
}
