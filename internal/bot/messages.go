package bot

import (
	"errors"

	"costela-bot/internal/address"
	"costela-bot/internal/order"
)

const (
	msgInternalError    = "Erro ao processar sua solicitação. Tente novamente."
	msgUnknownCommand   = "Comando desconhecido. Use /help para ver os comandos."
	msgUnknownInput     = "Não entendi. Use /start para ver o cardápio."
	msgEmptyCart        = "Adicione itens ao carrinho antes de finalizar o pedido."
	msgMissingContact   = "Por favor, preencha pelo menos seu nome e telefone."
	msgIncompleteAddr   = "Para delivery, é necessário informar o endereço completo."
	msgCheckoutClosed   = "Nenhum pedido em andamento. Toque em Finalizar pedido para começar."
	msgUnknownProduct   = "Produto indisponível."
	msgFieldRequired    = "Este campo é obrigatório."
	msgInvalidCEP       = "CEP inválido. Digite os 8 números do CEP ou envie - para preencher o endereço manualmente."
	msgCEPNotFound      = "CEP não encontrado. Preencha o endereço manualmente."
	msgCEPFailed        = "Não foi possível consultar o CEP agora. Preencha o endereço manualmente."
	msgSendFailed       = "Não foi possível enviar o pedido. Tente novamente."
	msgUseReviewButtons = "Use os botões acima para enviar ou cancelar o pedido."
	msgLookupPending    = "🔎 Buscando endereço pelo CEP..."
	msgCheckoutCanceled = "Pedido cancelado. Seus itens continuam no carrinho."
	msgOrderReady       = "✅ Pedido pronto! Toque no botão abaixo para enviar pelo WhatsApp."
	msgManualAddress    = "Digite o endereço. Para buscar por outro CEP, envie o CEP ou use /cep."
	msgNoAddressForm    = "O CEP só é pedido ao finalizar um pedido para delivery."
	msgHelp             = "Comandos disponíveis:\n" +
		"/start - abrir o cardápio\n" +
		"/carrinho - ver o carrinho\n" +
		"/cancelar - cancelar o pedido em andamento\n" +
		"/cep - buscar o endereço por outro CEP\n" +
		"/help - esta mensagem\n\n" +
		"Use ➖ e ➕ para escolher a quantidade e toque em Adicionar."
)

// userMessage maps a domain error to the text shown to the customer.
func userMessage(err error) string {
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		return msgEmptyCart
	case errors.Is(err, order.ErrMissingContact):
		return msgMissingContact
	case errors.Is(err, order.ErrIncompleteAddress):
		return msgIncompleteAddr
	case errors.Is(err, order.ErrCheckoutClosed):
		return msgCheckoutClosed
	case errors.Is(err, order.ErrUnknownProduct):
		return msgUnknownProduct
	case errors.Is(err, order.ErrFieldRequired):
		return msgFieldRequired
	case errors.Is(err, address.ErrInvalidFormat):
		return msgInvalidCEP
	case errors.Is(err, address.ErrNotFound):
		return msgCEPNotFound
	case errors.Is(err, address.ErrLookupFailed):
		return msgCEPFailed
	}
	return msgInternalError
}

// rejectionReason labels a rejected submit for metrics.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, order.ErrMissingContact):
		return "missing_contact"
	case errors.Is(err, order.ErrIncompleteAddress):
		return "incomplete_address"
	case errors.Is(err, order.ErrCheckoutClosed):
		return "checkout_closed"
	}
	return "send_failed"
}

var fieldPrompts = map[order.Field]string{
	order.FieldName:         "Qual é o seu nome?",
	order.FieldPhone:        "Qual é o seu telefone? Digite o número ou toque em Enviar contato.",
	order.FieldPostalCode:   "Qual é o seu CEP? Envie - para preencher o endereço manualmente.",
	order.FieldStreet:       "Rua:",
	order.FieldNumber:       "Número:",
	order.FieldComplement:   "Complemento (envie - para pular):",
	order.FieldNeighborhood: "Bairro:",
	order.FieldCity:         "Cidade:",
	order.FieldState:        "Estado (UF):",
	order.FieldNotes:        "Alguma observação sobre o pedido? (envie - para pular)",
}
