package domain

// FlowState: этап оформления заказа в рамках сессии.
type FlowState string

const (
	FlowBrowsing FlowState = "browsing"
	FlowCheckout FlowState = "checkout"
	FlowPlaced   FlowState = "placed"
)

var flowTransitions = map[FlowState][]FlowState{
	FlowBrowsing: {FlowCheckout, FlowPlaced},
	FlowCheckout: {FlowBrowsing, FlowPlaced},
	FlowPlaced:   {},
}

// CanTransitionTo проверяет, допустим ли переход. Placed: терминальное состояние сессии.
func (s FlowState) CanTransitionTo(next FlowState) bool {
	for _, allowed := range flowTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DeriveFlowState вычисляет этап по состоянию корзины.
func DeriveFlowState(cartEmpty, orderPlaced bool) FlowState {
	switch {
	case orderPlaced:
		return FlowPlaced
	case cartEmpty:
		return FlowBrowsing
	default:
		return FlowCheckout
	}
}
