package ui

import (
	"orderdeck/internal/browse"
	"orderdeck/internal/domain"
)

// ordersLoadedMsg carries a fetch completion back into the update loop.
type ordersLoadedMsg struct {
	comp browse.Completion
}

// orderDeletedMsg contains the result of a delete request
type orderDeletedMsg struct {
	id  string
	err error
}

// orderCreatedMsg contains the result of a create request
type orderCreatedMsg struct {
	order domain.Order
	err   error
}

// orderViewedMsg is sent when the order detail pager exits
type orderViewedMsg struct {
	id  string
	err error
}

// clearStatusMsg clears the transient status line
type clearStatusMsg struct{}
