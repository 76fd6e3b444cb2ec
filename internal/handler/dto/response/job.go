package response

import (
	"encoding/json"

	"content-dispatch/internal/usecase/queries"
)

type JobResponse struct {
	ID             int64           `json:"id"`
	Kind           string          `json:"kind"`
	SubjectID      *string         `json:"subject_id,omitempty" copier:"-"`
	QueueMessageID *string         `json:"queue_message_id,omitempty"`
	EventType      string          `json:"event_type"`
	Status         string          `json:"status"`
	Payload        json.RawMessage `json:"payload"`
	Error          *string         `json:"error,omitempty"`
	ProcessedAt    *int64          `json:"processed_at,omitempty" copier:"-"`
	CreatedAt      int64           `json:"created_at"`
	UpdatedAt      int64           `json:"updated_at"`
}

type JobPageResponse struct {
	Items  []*JobResponse `json:"items"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

func FromJobView(v *queries.JobView) (*JobResponse, error) {
	var res JobResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	res.SubjectID = uuidStringPtr(v.SubjectID)
	res.ProcessedAt = unixPtr(v.ProcessedAt)
	return &res, nil
}

func FromJobPage(p *queries.JobPage) (*JobPageResponse, error) {
	items := make([]*JobResponse, 0, len(p.Items))
	for _, v := range p.Items {
		item, err := FromJobView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &JobPageResponse{
		Items:  items,
		Total:  p.Total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}, nil
}
