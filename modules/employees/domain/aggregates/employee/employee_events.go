package employee

func NewCreatedEvent(data CreateDTO, result Employee) *CreatedEvent {
	return &CreatedEvent{Data: data, Result: result}
}

func NewUpdatedEvent(data UpdateDTO, result Employee) *UpdatedEvent {
	return &UpdatedEvent{Data: data, Result: result}
}

func NewDeletedEvent(result Employee) *DeletedEvent {
	return &DeletedEvent{Result: result}
}

type CreatedEvent struct {
	Data   CreateDTO
	Result Employee
}

type UpdatedEvent struct {
	Data   UpdateDTO
	Result Employee
}

type DeletedEvent struct {
	Result Employee
}
