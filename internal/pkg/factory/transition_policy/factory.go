package transition_policy

import (
	"fmt"

	"shipping/internal/entities"
	"shipping/internal/pkg/config"
	"shipping/internal/service/order"
)

// Policy решает, допустим ли переход между статусами заказа.
// В режиме permissive разрешен любой переход между известными статусами,
// в режиме strict только переходы из графа жизненного цикла.
type Policy struct {
	mode string
}

func New(mode string) (*Policy, error) {
	switch mode {
	case config.TransitionPolicyPermissive, config.TransitionPolicyStrict:
		return &Policy{mode: mode}, nil
	default:
		return nil, fmt.Errorf("unknown transition policy %q", mode)
	}
}

func (p *Policy) Mode() string {
	return p.mode
}

func (p *Policy) Check(from, to entities.OrderStatusType) error {
	if p.mode == config.TransitionPolicyPermissive {
		return nil
	}

	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, from, to)
	}
	return nil
}

// Next перечисляет статусы, в которые заказ можно перевести из from.
func (p *Policy) Next(from entities.OrderStatusType) []entities.OrderStatusType {
	if p.mode == config.TransitionPolicyStrict {
		return from.NextStatuses()
	}

	res := make([]entities.OrderStatusType, 0, len(entities.OrderStatuses()))
	for _, s := range entities.OrderStatuses() {
		if s != from {
			res = append(res, s)
		}
	}
	return res
}
