package dto

import "shipping/internal/entities"

const dateLayout = "2006-01-02"

func FromOrder(o *entities.Order) Order {
	res := Order{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          o.Status.String(),
		PickupAddress:   o.PickupAddress,
		FirstName:       o.FirstName,
		LastName:        o.LastName,
		Phone:           o.Phone,
		Email:           o.Email,
		DeliveryAddress: o.DeliveryAddress,
		Department:      o.Department,
		Municipality:    o.Municipality,
		ReferencePoint:  o.ReferencePoint,
		Instructions:    o.Instructions,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Packages:        FromPackages(o.Packages),
	}
	if !o.ScheduledDate.IsZero() {
		res.ScheduledDate = o.ScheduledDate.Format(dateLayout)
	}
	return res
}

func FromOrders(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for i := range orders {
		res = append(res, FromOrder(&orders[i]))
	}
	return res
}

func FromPackage(p *entities.Package) Package {
	return Package{
		ID:       p.ID,
		OrderID:  p.OrderID,
		LengthCm: p.LengthCm,
		HeightCm: p.HeightCm,
		WidthCm:  p.WidthCm,
		WeightLb: p.WeightLb,
		Content:  p.Content,
	}
}

func FromPackages(packages []entities.Package) []Package {
	res := make([]Package, 0, len(packages))
	for i := range packages {
		res = append(res, FromPackage(&packages[i]))
	}
	return res
}

func FromTransitions(transitions []entities.StatusTransition) []Transition {
	res := make([]Transition, 0, len(transitions))
	for _, t := range transitions {
		res = append(res, Transition{
			ID:        t.ID,
			OrderID:   t.OrderID,
			From:      t.From.String(),
			To:        t.To.String(),
			Source:    t.Source.String(),
			ChangedAt: t.ChangedAt,
		})
	}
	return res
}

func FromAuthResult(r *entities.AuthResult) AuthResponse {
	return AuthResponse{
		Token: r.Token,
		User: User{
			ID:        r.User.ID,
			Email:     r.User.Email,
			FirstName: r.User.FirstName,
			LastName:  r.User.LastName,
		},
	}
}
