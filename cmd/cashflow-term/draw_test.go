package main

import (
	"testing"

	"github.com/plus3/cashflow/game"
	"github.com/stretchr/testify/assert"
)

func TestBalanceBar(t *testing.T) {
	band := game.Band{Lo: 40, Hi: 60}

	assert.Equal(t, "[|···==····]", balanceBar(0, band, 10))
	assert.Equal(t, "[····|=····]", balanceBar(50, band, 10))
	assert.Equal(t, "[····==···|]", balanceBar(100, band, 10))
}
