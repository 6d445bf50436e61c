package transition

import "shipping/internal/entities"

func ToDomain(t *TransitionDB) *entities.StatusTransition {
	if t == nil {
		return nil
	}
	return &entities.StatusTransition{
		ID:        t.ID,
		OrderID:   t.OrderID,
		From:      entities.OrderStatusType(t.FromStatus),
		To:        entities.OrderStatusType(t.ToStatus),
		Source:    entities.TransitionSource(t.Source),
		ChangedAt: t.ChangedAt.UTC(),
	}
}

func ToDomainList(transitions []TransitionDB) []entities.StatusTransition {
	res := make([]entities.StatusTransition, 0, len(transitions))
	for i := range transitions {
		res = append(res, *ToDomain(&transitions[i]))
	}
	return res
}

func FromDomain(t *entities.StatusTransition) *TransitionDB {
	if t == nil {
		return nil
	}
	return &TransitionDB{
		ID:         t.ID,
		OrderID:    t.OrderID,
		FromStatus: t.From.String(),
		ToStatus:   t.To.String(),
		Source:     t.Source.String(),
		ChangedAt:  t.ChangedAt,
	}
}
