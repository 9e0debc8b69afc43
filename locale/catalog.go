package locale

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

const (
	MsgMissingRecipient    = "MissingRecipient"
	MsgProviderUnavailable = "ProviderUnavailable"
	MsgInstallTitle        = "InstallTitle"
	MsgInstallDescription  = "InstallDescription"
	MsgInstallEntry        = "InstallEntry"
	MsgWaitingApproval     = "WaitingApproval"
	MsgSubmitted           = "Submitted"
	MsgTransferFailed      = "TransferFailed"
	MsgNoAccount           = "NoAccount"
	MsgInvalidAddress      = "InvalidAddress"
	MsgInvalidAmount       = "InvalidAmount"
	MsgChainSwitchFailed   = "ChainSwitchFailed"
	MsgChainAddFailed      = "ChainAddFailed"
	MsgRPCEndpoint         = "RPCEndpoint"
	MsgInvalidTransaction  = "InvalidTransaction"
	MsgUserRejected        = "UserRejected"
	MsgInternalError       = "InternalError"
	MsgGenericFailure      = "GenericFailure"
	MsgSummaryTitle        = "SummaryTitle"
	MsgWalletsTitle        = "WalletsTitle"
	MsgNoWalletMatch       = "NoWalletMatch"
)

var english = []*i18n.Message{
	{ID: MsgMissingRecipient, Other: "Error: please provide a valid EVM wallet address"},
	{ID: MsgProviderUnavailable, Other: "No EVM wallet detected"},
	{ID: MsgInstallTitle, Other: "Please install an EVM wallet"},
	{ID: MsgInstallDescription, Other: "To use this feature you need a wallet that supports EVM chains:"},
	{ID: MsgInstallEntry, Other: "Install {{.Name}}"},
	{ID: MsgWaitingApproval, Other: "Waiting for your confirmation in the wallet..."},
	{ID: MsgSubmitted, Other: "Transaction submitted! Transaction hash: {{.Hash}}"},
	{ID: MsgTransferFailed, Other: "Transfer failed: {{.Reason}}"},
	{ID: MsgNoAccount, Other: "Please connect your wallet first"},
	{ID: MsgInvalidAddress, Other: "Recipient address is malformed, it must be 42 characters long including 0x"},
	{ID: MsgInvalidAmount, Other: "Amount must be greater than 0"},
	{ID: MsgChainSwitchFailed, Other: "Failed to switch network, please retry"},
	{ID: MsgChainAddFailed, Other: "Could not add {{.Chain}}, please add it manually"},
	{ID: MsgRPCEndpoint, Other: "RPC endpoint error, please retry later or switch network.\nIf the problem persists, try:\n1. Run the command again\n2. Switch the wallet's network\n3. Check your connection"},
	{ID: MsgInvalidTransaction, Other: "Transaction execution failed, possible reasons:\n1. Insufficient ETH balance\n2. Insufficient gas fee\n3. Invalid recipient address\nPlease check and retry"},
	{ID: MsgUserRejected, Other: "User declined the transaction request"},
	{ID: MsgInternalError, Other: "Transaction execution failed, please check your balance and the recipient address"},
	{ID: MsgGenericFailure, Other: "Transfer failed, please retry"},
	{ID: MsgSummaryTitle, Other: "Transfer"},
	{ID: MsgWalletsTitle, Other: "EVM wallets"},
	{ID: MsgNoWalletMatch, Other: "No wallet matches {{.Query}}"},
}

var chinese = []*i18n.Message{
	{ID: MsgMissingRecipient, Other: "错误：请提供有效的 EVM 钱包地址"},
	{ID: MsgProviderUnavailable, Other: "未检测到 EVM 钱包"},
	{ID: MsgInstallTitle, Other: "请安装 EVM 钱包"},
	{ID: MsgInstallDescription, Other: "要使用此功能，您需要安装一个支持 EVM 的钱包："},
	{ID: MsgInstallEntry, Other: "安装 {{.Name}}"},
	{ID: MsgWaitingApproval, Other: "请在钱包中确认交易..."},
	{ID: MsgSubmitted, Other: "交易已提交！交易哈希: {{.Hash}}"},
	{ID: MsgTransferFailed, Other: "转账失败: {{.Reason}}"},
	{ID: MsgNoAccount, Other: "请先连接钱包"},
	{ID: MsgInvalidAddress, Other: "接收地址格式不正确，地址长度应为 42 个字符（包含 0x）"},
	{ID: MsgInvalidAmount, Other: "金额必须大于 0"},
	{ID: MsgChainSwitchFailed, Other: "切换链失败，请重试"},
	{ID: MsgChainAddFailed, Other: "无法添加 {{.Chain}}，请手动添加"},
	{ID: MsgRPCEndpoint, Other: "RPC 端点错误，请稍后重试或切换网络。\n如果问题持续，请尝试：\n1. 重新运行命令\n2. 切换钱包网络\n3. 检查网络连接"},
	{ID: MsgInvalidTransaction, Other: "交易执行失败，可能的原因：\n1. ETH 余额不足\n2. Gas 费用不足\n3. 接收地址无效\n请检查后重试"},
	{ID: MsgUserRejected, Other: "用户拒绝了交易请求"},
	{ID: MsgInternalError, Other: "交易执行失败，请检查余额和地址是否正确"},
	{ID: MsgGenericFailure, Other: "转账失败，请重试"},
	{ID: MsgSummaryTitle, Other: "转账"},
	{ID: MsgWalletsTitle, Other: "EVM 钱包"},
	{ID: MsgNoWalletMatch, Other: "没有匹配 {{.Query}} 的钱包"},
}
