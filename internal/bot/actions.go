package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback data carried by the inline buttons. Telegram caps it at 64 bytes.
const (
	dataNoop           = "noop"
	dataCheckoutOpen   = "checkout:open"
	dataCheckoutCancel = "checkout:cancel"
	dataCheckoutSubmit = "checkout:submit"
	prefixStage        = "stage"
	prefixAdd          = "add"
	prefixItem         = "item"
	prefixMode         = "mode"
)

type actionKind int

const (
	actionNoop actionKind = iota
	actionStage
	actionAdd
	actionItem
	actionMode
	actionCheckoutOpen
	actionCheckoutCancel
	actionCheckoutSubmit
)

type action struct {
	kind      actionKind
	productID string
	delta     int
	mode      string
}

func stageData(productID string, delta int) string {
	return fmt.Sprintf("%s:%s:%d", prefixStage, productID, delta)
}

func addData(productID string) string {
	return prefixAdd + ":" + productID
}

func itemData(productID string, delta int) string {
	return fmt.Sprintf("%s:%s:%d", prefixItem, productID, delta)
}

func modeData(mode string) string {
	return prefixMode + ":" + mode
}

func parseAction(data string) (action, error) {
	switch data {
	case dataNoop:
		return action{kind: actionNoop}, nil
	case dataCheckoutOpen:
		return action{kind: actionCheckoutOpen}, nil
	case dataCheckoutCancel:
		return action{kind: actionCheckoutCancel}, nil
	case dataCheckoutSubmit:
		return action{kind: actionCheckoutSubmit}, nil
	}

	parts := strings.Split(data, ":")
	switch {
	case len(parts) == 2 && parts[0] == prefixAdd && parts[1] != "":
		return action{kind: actionAdd, productID: parts[1]}, nil

	case len(parts) == 2 && parts[0] == prefixMode && parts[1] != "":
		return action{kind: actionMode, mode: parts[1]}, nil

	case len(parts) == 3 && (parts[0] == prefixStage || parts[0] == prefixItem):
		delta, err := strconv.Atoi(parts[2])
		if err != nil || delta == 0 || parts[1] == "" {
			return action{}, fmt.Errorf("invalid quantity change %q", data)
		}
		kind := actionStage
		if parts[0] == prefixItem {
			kind = actionItem
		}
		return action{kind: kind, productID: parts[1], delta: delta}, nil
	}

	return action{}, fmt.Errorf("unknown callback %q", data)
}
