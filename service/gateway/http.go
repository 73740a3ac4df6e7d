package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
)

// Handler exposes the screens over plain REST so a browser front end can
// drive them without a jsonrpc client.
type Handler struct {
	g *Gateway
}

func NewHandler(g *Gateway) *Handler {
	return &Handler{g: g}
}

// Register mounts the gateway routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/gateway/token", h.token).Methods(http.MethodGet)
	r.HandleFunc("/gateway/account/{address}", h.account).Methods(http.MethodGet)
	r.HandleFunc("/gateway/balance/{address}", h.account).Methods(http.MethodGet)
	r.HandleFunc("/gateway/deposit/{address}", h.account).Methods(http.MethodGet)
	r.HandleFunc("/gateway/nonce/{address}", h.nonce).Methods(http.MethodGet)
	r.HandleFunc("/gateway/tx/{hash}", h.txStatus).Methods(http.MethodGet)
	r.HandleFunc("/gateway/transfer", h.transfer).Methods(http.MethodPost)
	r.HandleFunc("/gateway/deposit", h.deposit).Methods(http.MethodPost)
	r.HandleFunc("/gateway/withdraw", h.withdraw).Methods(http.MethodPost)
}

type transferRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

type amountRequest struct {
	Amount string `json:"amount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ti, err := h.g.TokenInfo(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, ti)
}

func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["address"]
	if !common.IsHexAddress(raw) {
		writeError(w, http.StatusBadRequest, ErrBadRecipient)
		return
	}

	av, err := h.g.Account(r.Context(), common.HexToAddress(raw))
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, av)
}

type nonceResponse struct {
	Address string `json:"address"`
	Nonce   string `json:"nonce"`
}

func (h *Handler) nonce(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["address"]
	if !common.IsHexAddress(raw) {
		writeError(w, http.StatusBadRequest, ErrBadRecipient)
		return
	}

	nonce, err := h.g.PermitNonce(r.Context(), common.HexToAddress(raw))
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, nonceResponse{Address: common.HexToAddress(raw).Hex(), Nonce: nonce.String()})
}

func (h *Handler) txStatus(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["hash"]
	tv, err := h.g.TxStatus(r.Context(), common.HexToHash(raw))
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, tv)
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ti, err := h.g.TokenInfo(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	f := NewTransferForm(h.g.Owner(), ti.Decimals, nil)
	f.Recipient = req.Recipient
	f.Amount = req.Amount

	tv, err := f.Submit(r.Context(), h.g)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, tv)
}

func (h *Handler) deposit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ti, err := h.g.TokenInfo(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	f := NewDepositForm(ti.Decimals, nil)
	f.Amount = req.Amount

	tv, err := f.Submit(r.Context(), h.g)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, tv)
}

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tv, err := h.g.Withdraw(r.Context(), req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, tv)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode response: ", err)
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
