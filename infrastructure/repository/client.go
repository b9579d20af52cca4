package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/database/postgres"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
)

const clientsTable = "clients"

// ClientRepository é a abstração de armazenamento da carteira de clientes.
// O motor de métricas nunca fala com o banco: recebe entidades prontas.
type ClientRepository interface {
	SaveClient(client *domain.Client) error
	GetClientByID(id string) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
	UpdateDelinquencyData(clientID string, data domain.DelinquencyData) error
	UpdateWeeklyRevenue(clientID string, weeks []domain.WeeklyRevenue) error
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

const clientColumns = "id, client_number, first_name, last_name, service_type, payment_plan, " +
	"status, is_active, registration_date, deactivation_date, last_contact, " +
	"weekly_revenue, ltv_data, delinquency_data, state, city, region"

func (r *clientRepository) SaveClient(client *domain.Client) error {
	paymentPlanJSON, err := json.Marshal(client.PaymentPlan)
	if err != nil {
		return fmt.Errorf("erro ao serializar plano de pagamento: %w", err)
	}

	weeklyRevenueJSON, err := json.Marshal(client.WeeklyRevenue)
	if err != nil {
		return fmt.Errorf("erro ao serializar faturamento semanal: %w", err)
	}

	ltvJSON, err := json.Marshal(client.LTVData)
	if err != nil {
		return fmt.Errorf("erro ao serializar dados de LTV: %w", err)
	}

	delinquencyJSON, err := json.Marshal(client.DelinquencyData)
	if err != nil {
		return fmt.Errorf("erro ao serializar dados de inadimplência: %w", err)
	}

	query, args, err := squirrel.
		Insert(clientsTable).
		Columns(
			"id", "client_number", "first_name", "last_name", "service_type",
			"payment_plan", "status", "is_active", "registration_date",
			"deactivation_date", "last_contact", "weekly_revenue", "ltv_data",
			"delinquency_data", "state", "city", "region",
		).
		Values(
			client.ID, client.ClientNumber, client.FirstName, client.LastName,
			client.ServiceType, paymentPlanJSON, client.Status, client.IsActive,
			client.RegistrationDate, client.DeactivationDate, client.LastContact,
			weeklyRevenueJSON, ltvJSON, delinquencyJSON,
			client.State, client.City, client.Region,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar cliente: %w", err)
	}

	return nil
}

func (r *clientRepository) GetClientByID(id string) (*domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns).
		From(clientsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client, err := scanClient(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) ListClients() ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns).
		From(clientsTable).
		OrderBy("client_number ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar clientes: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) UpdateDelinquencyData(clientID string, data domain.DelinquencyData) error {
	delinquencyJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("erro ao serializar dados de inadimplência: %w", err)
	}

	query, args, err := squirrel.
		Update(clientsTable).
		Set("delinquency_data", delinquencyJSON).
		Where(squirrel.Eq{"id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar dados de inadimplência: %w", err)
	}

	return nil
}

func (r *clientRepository) UpdateWeeklyRevenue(clientID string, weeks []domain.WeeklyRevenue) error {
	weeklyRevenueJSON, err := json.Marshal(weeks)
	if err != nil {
		return fmt.Errorf("erro ao serializar faturamento semanal: %w", err)
	}

	query, args, err := squirrel.
		Update(clientsTable).
		Set("weekly_revenue", weeklyRevenueJSON).
		Where(squirrel.Eq{"id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar faturamento semanal: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var (
		client            domain.Client
		paymentPlanJSON   []byte
		weeklyRevenueJSON []byte
		ltvJSON           []byte
		delinquencyJSON   []byte
	)

	err := row.Scan(
		&client.ID,
		&client.ClientNumber,
		&client.FirstName,
		&client.LastName,
		&client.ServiceType,
		&paymentPlanJSON,
		&client.Status,
		&client.IsActive,
		&client.RegistrationDate,
		&client.DeactivationDate,
		&client.LastContact,
		&weeklyRevenueJSON,
		&ltvJSON,
		&delinquencyJSON,
		&client.State,
		&client.City,
		&client.Region,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(paymentPlanJSON, &client.PaymentPlan); err != nil {
		return nil, fmt.Errorf("erro ao decodificar plano de pagamento: %w", err)
	}
	if len(weeklyRevenueJSON) > 0 {
		if err := json.Unmarshal(weeklyRevenueJSON, &client.WeeklyRevenue); err != nil {
			return nil, fmt.Errorf("erro ao decodificar faturamento semanal: %w", err)
		}
	}
	if err := json.Unmarshal(ltvJSON, &client.LTVData); err != nil {
		return nil, fmt.Errorf("erro ao decodificar dados de LTV: %w", err)
	}
	if err := json.Unmarshal(delinquencyJSON, &client.DelinquencyData); err != nil {
		return nil, fmt.Errorf("erro ao decodificar dados de inadimplência: %w", err)
	}

	return &client, nil
}
