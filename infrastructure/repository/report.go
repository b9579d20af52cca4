package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/database/postgres"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
)

const monthlyReportsTable = "monthly_reports"

// ReportRepository é a abstração de armazenamento dos relatórios mensais
type ReportRepository interface {
	SaveReport(report *domain.MonthlyReport) error
	GetReportByPeriod(restaurantID string, month, year int) (*domain.MonthlyReport, error)
	ListReportsByRestaurant(restaurantID string) ([]*domain.MonthlyReport, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

const reportColumns = "id, restaurant_id, month, year, total_revenue, order_count, " +
	"average_ticket, rent, payroll, accounting, other_fixed_costs, ingredients, " +
	"platform_fee, packaging, gas_energy, working_days, cancelled_orders, " +
	"top_dishes, missing_ingredients, equipment_failure, overtime"

func (r *reportRepository) SaveReport(report *domain.MonthlyReport) error {
	topDishesJSON, err := json.Marshal(report.TopDishes)
	if err != nil {
		return fmt.Errorf("erro ao serializar pratos de destaque: %w", err)
	}

	missingJSON, err := json.Marshal(report.MissingIngredients)
	if err != nil {
		return fmt.Errorf("erro ao serializar ponto de atenção: %w", err)
	}

	equipmentJSON, err := json.Marshal(report.EquipmentFailure)
	if err != nil {
		return fmt.Errorf("erro ao serializar ponto de atenção: %w", err)
	}

	overtimeJSON, err := json.Marshal(report.Overtime)
	if err != nil {
		return fmt.Errorf("erro ao serializar horas extras: %w", err)
	}

	query, args, err := squirrel.
		Insert(monthlyReportsTable).
		Columns(
			"id", "restaurant_id", "month", "year", "total_revenue", "order_count",
			"average_ticket", "rent", "payroll", "accounting", "other_fixed_costs",
			"ingredients", "platform_fee", "packaging", "gas_energy", "working_days",
			"cancelled_orders", "top_dishes", "missing_ingredients",
			"equipment_failure", "overtime",
		).
		Values(
			report.ID, report.RestaurantID, report.Month, report.Year,
			report.TotalRevenue, report.OrderCount, report.AverageTicket,
			report.Rent, report.Payroll, report.Accounting, report.OtherFixedCosts,
			report.Ingredients, report.PlatformFee, report.Packaging, report.GasEnergy,
			report.WorkingDays, report.CancelledOrders, topDishesJSON,
			missingJSON, equipmentJSON, overtimeJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar relatório mensal: %w", err)
	}

	return nil
}

func (r *reportRepository) GetReportByPeriod(restaurantID string, month, year int) (*domain.MonthlyReport, error) {
	query, args, err := squirrel.
		Select(reportColumns).
		From(monthlyReportsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID, "month": month, "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := scanReport(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return report, nil
}

func (r *reportRepository) ListReportsByRestaurant(restaurantID string) ([]*domain.MonthlyReport, error) {
	query, args, err := squirrel.
		Select(reportColumns).
		From(monthlyReportsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("year DESC", "month DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar relatórios: %w", err)
	}
	defer rows.Close()

	var reports []*domain.MonthlyReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return reports, nil
}

func scanReport(row rowScanner) (*domain.MonthlyReport, error) {
	var (
		report        domain.MonthlyReport
		topDishesJSON []byte
		missingJSON   []byte
		equipmentJSON []byte
		overtimeJSON  []byte
	)

	err := row.Scan(
		&report.ID,
		&report.RestaurantID,
		&report.Month,
		&report.Year,
		&report.TotalRevenue,
		&report.OrderCount,
		&report.AverageTicket,
		&report.Rent,
		&report.Payroll,
		&report.Accounting,
		&report.OtherFixedCosts,
		&report.Ingredients,
		&report.PlatformFee,
		&report.Packaging,
		&report.GasEnergy,
		&report.WorkingDays,
		&report.CancelledOrders,
		&topDishesJSON,
		&missingJSON,
		&equipmentJSON,
		&overtimeJSON,
	)
	if err != nil {
		return nil, err
	}

	if len(topDishesJSON) > 0 {
		if err := json.Unmarshal(topDishesJSON, &report.TopDishes); err != nil {
			return nil, fmt.Errorf("erro ao decodificar pratos de destaque: %w", err)
		}
	}
	if err := json.Unmarshal(missingJSON, &report.MissingIngredients); err != nil {
		return nil, fmt.Errorf("erro ao decodificar ponto de atenção: %w", err)
	}
	if err := json.Unmarshal(equipmentJSON, &report.EquipmentFailure); err != nil {
		return nil, fmt.Errorf("erro ao decodificar ponto de atenção: %w", err)
	}
	if err := json.Unmarshal(overtimeJSON, &report.Overtime); err != nil {
		return nil, fmt.Errorf("erro ao decodificar horas extras: %w", err)
	}

	return &report, nil
}
