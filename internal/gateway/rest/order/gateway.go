package order

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"shipping/internal/entities"
	orderservice "shipping/internal/service/order"
)

type OrderGateway struct {
	client client
}

func New(client client) *OrderGateway {
	return &OrderGateway{
		client: client,
	}
}

func (o *OrderGateway) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var resp []orderDTO

	err := o.client.Do(ctx, "ListOrders", http.MethodGet, "/orders", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, list orders: %w", err)
	}

	return toDomainList(resp), nil
}

func (o *OrderGateway) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	var resp orderDTO

	err := o.client.Do(ctx, "GetOrder", http.MethodGet, orderPath(orderID), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, err)
	}

	return toDomain(&resp), nil
}

func (o *OrderGateway) CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	var resp orderDTO

	err := o.client.Do(ctx, "CreateOrder", http.MethodPost, "/orders", fromDomainDraft(draft), &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, create order: %w", err)
	}

	return toDomain(&resp), nil
}

func (o *OrderGateway) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	var resp orderDTO

	req := updateStatusDTO{Status: status.String()}
	err := o.client.Do(ctx, "UpdateOrderStatus", http.MethodPatch, orderPath(orderID)+"/status", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, update status: %s -> %s: %w", orderID, status, err)
	}

	return toDomain(&resp), nil
}

// AddPackage гарантирует, что у возвращенной посылки заполнен orderId:
// пустой заполняется запрошенным заказом, чужой считается ошибкой.
func (o *OrderGateway) AddPackage(ctx context.Context, orderID string, draft entities.PackageDraft) (*entities.Package, error) {
	var resp packageDTO

	err := o.client.Do(ctx, "AddPackage", http.MethodPost, orderPath(orderID)+"/packages", fromDomainPackageDraft(draft), &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, add package: %s: %w", orderID, err)
	}

	pkg := toDomainPackage(&resp)
	switch pkg.OrderID {
	case "":
		pkg.OrderID = orderID
	case orderID:
	default:
		return nil, fmt.Errorf("gateway order, add package: %w: requested %s, got %s",
			orderservice.ErrPackageOrderMismatch, orderID, pkg.OrderID)
	}

	return pkg, nil
}

func (o *OrderGateway) DeletePackage(ctx context.Context, orderID, packageID string) error {
	path := orderPath(orderID) + "/packages/" + url.PathEscape(packageID)

	err := o.client.Do(ctx, "DeletePackage", http.MethodDelete, path, nil, nil)
	if err != nil {
		return fmt.Errorf("gateway order, delete package: %s/%s: %w", orderID, packageID, err)
	}

	return nil
}

func orderPath(orderID string) string {
	return "/orders/" + url.PathEscape(orderID)
}
