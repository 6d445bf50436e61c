package order

import (
	"shipping/internal/entities"
)

func toDomain(o *orderDTO) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          entities.OrderStatusType(o.Status),
		PickupAddress:   o.PickupAddress,
		ScheduledDate:   o.ScheduledDate.Time,
		FirstName:       o.FirstName,
		LastName:        o.LastName,
		Phone:           o.Phone,
		Email:           o.Email,
		DeliveryAddress: o.DeliveryAddress,
		Department:      o.Department,
		Municipality:    o.Municipality,
		ReferencePoint:  o.ReferencePoint,
		Instructions:    o.Instructions,
		CreatedAt:       o.CreatedAt.Time,
		UpdatedAt:       o.UpdatedAt.Time,
		Packages:        toDomainPackages(o.Packages),
	}
}

func toDomainList(orders []orderDTO) []entities.Order {
	if len(orders) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(orders))
	for i := range orders {
		result[i] = *toDomain(&orders[i])
	}
	return result
}

func toDomainPackage(p *packageDTO) *entities.Package {
	if p == nil {
		return nil
	}

	return &entities.Package{
		ID:       p.ID,
		OrderID:  p.OrderID,
		LengthCm: p.LengthCm,
		HeightCm: p.HeightCm,
		WidthCm:  p.WidthCm,
		WeightLb: p.WeightLb,
		Content:  p.Content,
	}
}

func toDomainPackages(packages []packageDTO) []entities.Package {
	result := make([]entities.Package, len(packages))
	for i := range packages {
		result[i] = *toDomainPackage(&packages[i])
	}
	return result
}

func fromDomainDraft(d entities.OrderDraft) createOrderDTO {
	return createOrderDTO{
		PickupAddress:   d.PickupAddress,
		ScheduledDate:   d.ScheduledDate.UTC(),
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Phone:           d.Phone,
		Email:           d.Email,
		DeliveryAddress: d.DeliveryAddress,
		Department:      d.Department,
		Municipality:    d.Municipality,
		ReferencePoint:  d.ReferencePoint,
		Instructions:    d.Instructions,
	}
}

func fromDomainPackageDraft(d entities.PackageDraft) createPackageDTO {
	return createPackageDTO{
		LengthCm: d.LengthCm,
		HeightCm: d.HeightCm,
		WidthCm:  d.WidthCm,
		WeightLb: d.WeightLb,
		Content:  d.Content,
	}
}
