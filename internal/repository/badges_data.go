package repository

import "chainquest_backend/internal/model"

// Badge catalog. XPReward on a badge is descriptive display data; awarding a
// badge never mutates XP (see ProgressionService.AwardBadge).
var badges = []model.Badge{
	{ID: "first_lesson", Name: "First Steps", Description: "Complete your first lesson", Icon: "rocket", XPReward: 10},
	{ID: "quiz_master", Name: "Quiz Master", Description: "Get 5 quiz answers correct", Icon: "trophy", XPReward: 25},
	{ID: "perfect_quiz", Name: "Perfect Score", Description: "Get 100% on any quiz", Icon: "star", XPReward: 30},
	{ID: "curious_mind", Name: "Curious Mind", Description: "Ask the AI Tutor 10 questions", Icon: "chat", XPReward: 20},
	{ID: "code_scholar", Name: "Code Scholar", Description: "Explain your first smart contract", Icon: "code", XPReward: 30},
	{ID: "blockchain_basics", Name: "Blockchain Basics", Description: "Complete the Blockchain Fundamentals module", Icon: "cube", XPReward: 50},
	{ID: "wallet_wizard", Name: "Wallet Wizard", Description: "Complete the Crypto Wallets module", Icon: "wallet", XPReward: 50},
	{ID: "smart_scholar", Name: "Smart Scholar", Description: "Complete the Smart Contracts module", Icon: "code", XPReward: 50},
	{ID: "defi_explorer", Name: "DeFi Explorer", Description: "Complete the DeFi module", Icon: "chart", XPReward: 50},
	{ID: "contract_master", Name: "Contract Master", Description: "Mastered smart contracts", Icon: "📜", XPReward: 75},
}

// moduleBadges maps a module id to the badge awarded when every lesson in
// that module is completed.
var moduleBadges = map[string]string{
	"blockchain":     "blockchain_basics",
	"wallet":         "wallet_wizard",
	"smart-contract": "smart_scholar",
	"defi":           "defi_explorer",
}
