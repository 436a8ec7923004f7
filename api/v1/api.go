package v1

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mybooks/mybooks/http/response"
	"github.com/mybooks/mybooks/middleware"
	"github.com/mybooks/mybooks/store"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewHandler is a constructor for the v1.Handler
func NewHandler(store *store.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func Server(router *mux.Router, handler *Handler) {
	middleware := middleware.NewMiddleware(handler.logger)
	router.Use(middleware.HandleCORS)
	router.Use(middleware.LoggingRequest)
	router.Methods(http.MethodOptions)

	// The uuid route pattern keeps /{prefix}/ordenado, /count and /filtrar
	// from being swallowed by the id route.
	const uuidPattern = "{id:[0-9a-fA-F-]{36}}"

	autores := router.PathPrefix("/autores").Subrouter()
	autores.HandleFunc("/"+uuidPattern, handler.getAuthor).Methods(http.MethodGet)
	autores.HandleFunc("/", handler.createAuthor).Methods(http.MethodPost)
	autores.HandleFunc("/"+uuidPattern, handler.updateAuthor).Methods(http.MethodPatch)
	autores.HandleFunc("/", handler.listAuthors).Methods(http.MethodGet)
	autores.HandleFunc("/ordenado", handler.listAuthorsSorted).Methods(http.MethodGet)
	autores.HandleFunc("/count", handler.countAuthors).Methods(http.MethodGet)
	autores.HandleFunc("/", handler.deleteAuthor).Methods(http.MethodDelete)
	autores.HandleFunc("/filtrar", handler.filterAuthors).Methods(http.MethodGet)

	editoras := router.PathPrefix("/editoras").Subrouter()
	editoras.HandleFunc("/com-livros-e-autores", handler.listPublishersWithBooks).Methods(http.MethodGet)
	editoras.HandleFunc("/"+uuidPattern, handler.getPublisher).Methods(http.MethodGet)
	editoras.HandleFunc("/", handler.createPublisher).Methods(http.MethodPost)
	editoras.HandleFunc("/", handler.updatePublisher).Methods(http.MethodPatch)
	editoras.HandleFunc("/", handler.listPublishers).Methods(http.MethodGet)
	editoras.HandleFunc("/ordenado", handler.listPublishersSorted).Methods(http.MethodGet)
	editoras.HandleFunc("/count", handler.countPublishers).Methods(http.MethodGet)
	editoras.HandleFunc("/", handler.deletePublisher).Methods(http.MethodDelete)
	editoras.HandleFunc("/filtrar", handler.filterPublishers).Methods(http.MethodGet)

	livros := router.PathPrefix("/livros").Subrouter()
	livros.HandleFunc("/"+uuidPattern, handler.getBook).Methods(http.MethodGet)
	livros.HandleFunc("/", handler.createBook).Methods(http.MethodPost)
	livros.HandleFunc("/", handler.updateBook).Methods(http.MethodPatch)
	livros.HandleFunc("/", handler.listBooks).Methods(http.MethodGet)
	livros.HandleFunc("/ordenado", handler.listBooksSorted).Methods(http.MethodGet)
	livros.HandleFunc("/count", handler.countBooks).Methods(http.MethodGet)
	livros.HandleFunc("/", handler.deleteBook).Methods(http.MethodDelete)
	livros.HandleFunc("/filtrar", handler.filterBooks).Methods(http.MethodGet)

	usuarios := router.PathPrefix("/usuarios").Subrouter()
	usuarios.HandleFunc("/"+uuidPattern, handler.getUser).Methods(http.MethodGet)
	usuarios.HandleFunc("/", handler.createUser).Methods(http.MethodPost)
	usuarios.HandleFunc("/", handler.updateUser).Methods(http.MethodPatch)
	usuarios.HandleFunc("/", handler.listUsers).Methods(http.MethodGet)
	usuarios.HandleFunc("/ordenado", handler.listUsersSorted).Methods(http.MethodGet)
	usuarios.HandleFunc("/count", handler.countUsers).Methods(http.MethodGet)
	usuarios.HandleFunc("/", handler.deleteUser).Methods(http.MethodDelete)
	usuarios.HandleFunc("/filtrar", handler.filterUsers).Methods(http.MethodGet)

	pedidos := router.PathPrefix("/pedidos").Subrouter()
	pedidos.HandleFunc("/"+uuidPattern, handler.getOrder).Methods(http.MethodGet)
	pedidos.HandleFunc("/", handler.createOrder).Methods(http.MethodPost)
	pedidos.HandleFunc("/", handler.updateOrder).Methods(http.MethodPatch)
	pedidos.HandleFunc("/", handler.listOrders).Methods(http.MethodGet)
	pedidos.HandleFunc("/ordenado", handler.listOrdersSorted).Methods(http.MethodGet)
	pedidos.HandleFunc("/count", handler.countOrders).Methods(http.MethodGet)
	pedidos.HandleFunc("/", handler.deleteOrder).Methods(http.MethodDelete)
	pedidos.HandleFunc("/filtrar", handler.filterOrders).Methods(http.MethodGet)

	pagamentos := router.PathPrefix("/pagamentos").Subrouter()
	pagamentos.HandleFunc("/"+uuidPattern, handler.getPayment).Methods(http.MethodGet)
	pagamentos.HandleFunc("/", handler.createPayment).Methods(http.MethodPost)
	pagamentos.HandleFunc("/", handler.updatePayment).Methods(http.MethodPatch)
	pagamentos.HandleFunc("/", handler.listPayments).Methods(http.MethodGet)
	pagamentos.HandleFunc("/ordenado", handler.listPaymentsSorted).Methods(http.MethodGet)
	pagamentos.HandleFunc("/count", handler.countPayments).Methods(http.MethodGet)
	pagamentos.HandleFunc("/", handler.deletePayment).Methods(http.MethodDelete)
	pagamentos.HandleFunc("/filtrar", handler.filterPayments).Methods(http.MethodGet)

	pedidoLivro := router.PathPrefix("/pedido-livro").Subrouter()
	pedidoLivro.HandleFunc("/vincular", handler.linkOrderBook).Methods(http.MethodPost)
	pedidoLivro.HandleFunc("/livros/{pedido_id}", handler.listOrderBooks).Methods(http.MethodGet)
	pedidoLivro.HandleFunc("/desvincular", handler.unlinkOrderBook).Methods(http.MethodDelete)

	pedidoPagamento := router.PathPrefix("/pedido-pagamento").Subrouter()
	pedidoPagamento.HandleFunc("/vincular", handler.linkOrderPayment).Methods(http.MethodPost)
	pedidoPagamento.HandleFunc("/pagamentos/{pedido_id}", handler.listOrderPayments).Methods(http.MethodGet)
	pedidoPagamento.HandleFunc("/desvincular", handler.unlinkOrderPayment).Methods(http.MethodDelete)

	consulta := router.PathPrefix("/consulta-usuario").Subrouter()
	consulta.HandleFunc("/pedidos-detalhados/{usuario_id}", handler.userOrderDetails).Methods(http.MethodGet)
	consulta.HandleFunc("/editora-detalhado/{editora_id}", handler.publisherDetail).Methods(http.MethodGet)
}

// respondStoreError maps the repository error kinds onto wire statuses. The
// error text is the client-facing detail.
func (h *Handler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(h.logger, w, r, err)
	case errors.Is(err, store.ErrConflict), errors.Is(err, store.ErrValidation):
		response.BadRequest(h.logger, w, r, err)
	default:
		response.ServerError(h.logger, w, r, err)
	}
}
