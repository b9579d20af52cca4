package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jcarlosamorim/consultoria-api/internal/usecases/aggregating"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/registering"
	"github.com/jcarlosamorim/consultoria-api/pkg/apiErrors"
)

// ListClients retorna a carteira completa na visão de listagem
func ListClients(service aggregating.Portfolier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := service.ListClients()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(clients)
	}
}

// GetClient retorna os dados completos de um cliente
func GetClient(service aggregating.Portfolier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		client, err := service.GetClient(clientID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente", nil)
			return
		}

		if client == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cliente não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client)
	}
}

// RegisterClient cadastra um novo cliente na carteira
func RegisterClient(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input registering.NewClientInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		client, err := service.RegisterClient(&input)
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client)
	}
}

// handleRegisterError traduz os erros de cadastro para a resposta da API
func handleRegisterError(w http.ResponseWriter, err error) {
	var validationErr *registering.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Error(), map[string]any{
			"field": validationErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, registering.ErrDuplicateReport):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateResource, err.Error(), nil)

	case errors.Is(err, registering.ErrRestaurantNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, registering.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar cadastro", nil)
	}
}
