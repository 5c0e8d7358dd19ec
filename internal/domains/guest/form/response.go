package form

import "hostel/internal/domains/guest/model/dto"

func (s State) ToResponse() dto.FormResponse {
	res := dto.FormResponse{
		ID:         s.ID,
		Values:     s.Values,
		Errors:     make([]dto.FieldErrorResponse, len(s.Errors)),
		Submitting: s.Submitting,
	}

	for i, fieldErr := range s.Errors {
		res.Errors[i] = dto.FieldErrorResponse(fieldErr)
	}

	if s.SubmitError != nil {
		message := s.SubmitError.Error()
		res.SubmitError = &message
	}

	if s.Created != nil {
		res.Created = &dto.GuestResponse{}
		res.Created.FromModel(*s.Created)
	}

	return res
}
