package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/service"
)

const exportPageSize = 500

// TransferHandler streams CSV exports and accepts CSV imports.
type TransferHandler struct {
	inventory *service.InventoryService
	suppliers *service.SupplierService
	orders    *service.OrderService
}

// NewTransferHandler constructs handler.
func NewTransferHandler(inventoryService *service.InventoryService, supplierService *service.SupplierService, orderService *service.OrderService) *TransferHandler {
	return &TransferHandler{inventory: inventoryService, suppliers: supplierService, orders: orderService}
}

// ExportInventory handles GET /export/inventory.
func (h *TransferHandler) ExportInventory(c *fiber.Ctx) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "product_name", "description", "quantity", "unit_price", "category", "location"}); err != nil {
		return err
	}

	for offset := 0; ; offset += exportPageSize {
		items, err := h.inventory.List(c.Context(), offset, exportPageSize)
		if err != nil {
			return err
		}
		for _, item := range items {
			record := []string{
				strconv.FormatInt(item.ID, 10),
				item.ProductName,
				item.Description,
				strconv.Itoa(item.Quantity),
				strconv.FormatFloat(item.UnitPrice, 'f', 2, 64),
				item.Category,
				item.Location,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		if len(items) < exportPageSize {
			break
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return sendCSV(c, "inventory.csv", buf.Bytes())
}

// ExportSuppliers handles GET /export/suppliers.
func (h *TransferHandler) ExportSuppliers(c *fiber.Ctx) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "name", "contact_name", "email", "phone", "address", "is_active"}); err != nil {
		return err
	}

	for offset := 0; ; offset += exportPageSize {
		suppliers, err := h.suppliers.List(c.Context(), offset, exportPageSize)
		if err != nil {
			return err
		}
		for _, s := range suppliers {
			record := []string{
				strconv.FormatInt(s.ID, 10),
				s.Name,
				s.ContactName,
				s.Email,
				s.Phone,
				s.Address,
				strconv.FormatBool(s.IsActive),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		if len(suppliers) < exportPageSize {
			break
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return sendCSV(c, "suppliers.csv", buf.Bytes())
}

// ExportOrders handles GET /export/orders.
func (h *TransferHandler) ExportOrders(c *fiber.Ctx) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "order_date", "status", "total_amount", "supplier_id"}); err != nil {
		return err
	}

	for offset := 0; ; offset += exportPageSize {
		orders, err := h.orders.List(c.Context(), offset, exportPageSize)
		if err != nil {
			return err
		}
		for _, o := range orders {
			record := []string{
				strconv.FormatInt(o.ID, 10),
				o.OrderDate.Format("2006-01-02"),
				string(o.Status),
				strconv.FormatFloat(o.TotalAmount, 'f', 2, 64),
				strconv.FormatInt(o.SupplierID, 10),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		if len(orders) < exportPageSize {
			break
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return sendCSV(c, "orders.csv", buf.Bytes())
}

// ImportInventory handles POST /import/inventory. The body is a CSV with a
// header row matching the export format; the id column is ignored.
func (h *TransferHandler) ImportInventory(c *fiber.Ctx) error {
	r := csv.NewReader(bytes.NewReader(c.Body()))
	header, err := r.Read()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "empty or malformed csv")
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := col["product_name"]; !ok {
		return fiber.NewError(http.StatusBadRequest, "csv missing product_name column")
	}

	imported := 0
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, fmt.Sprintf("line %d: %v", line, err))
		}

		item, err := inventoryFromRecord(col, record)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, fmt.Sprintf("line %d: %v", line, err))
		}
		if err := h.inventory.Create(c.Context(), actorID(c), item); err != nil {
			return err
		}
		imported++
	}

	return c.JSON(fiber.Map{"imported": imported})
}

func inventoryFromRecord(col map[string]int, record []string) (*domain.InventoryItem, error) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("product_name")
	if name == "" {
		return nil, fmt.Errorf("product_name is empty")
	}

	item := &domain.InventoryItem{ProductName: name, Description: field("description"), Category: field("category"), Location: field("location")}
	if q := field("quantity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return nil, fmt.Errorf("quantity %q is not a number", q)
		}
		item.Quantity = n
	}
	if p := field("unit_price"); p != "" {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("unit_price %q is not a number", p)
		}
		item.UnitPrice = f
	}
	return item, nil
}

func sendCSV(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}
