package slack

var (
	BuildSettleBlocks = buildSettleBlocks
	SettleColor       = settleColor
)
