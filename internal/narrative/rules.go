package narrative

import "NarrativeScanner/internal/domain"

// Narrative names produced by the detector. The set is closed.
const (
	AIAgents               = "AI Agents"
	DePINExpansion         = "DePIN Expansion"
	MemeCoinInfrastructure = "Meme Coin Infrastructure"
	LiquidStakingGrowth    = "Liquid Staking Growth"
	NFTInnovation          = "NFT Innovation"
	GamingConsumerApps     = "Gaming & Consumer Apps"
	PaymentsPayFi          = "Payments & PayFi"
	DeFiPrimitives         = "DeFi Primitives"
	DeveloperToolingGrowth = "Developer Tooling Growth"
	CrossChainInterop      = "Cross-Chain Interoperability"
)

// Rule ties a keyword group to the narrative emitted when any keyword matches.
type Rule struct {
	Name       string
	Keywords   []string
	Confidence domain.Confidence
	Evidence   string
	Timeframe  string
}

func (r Rule) narrative() domain.Narrative {
	keywords := make([]string, len(r.Keywords))
	copy(keywords, r.Keywords)
	return domain.Narrative{
		Name:       r.Name,
		Confidence: r.Confidence,
		Evidence:   r.Evidence,
		Timeframe:  r.Timeframe,
		Keywords:   keywords,
	}
}

// DefaultRules returns the ordered rule list. Order decides output order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:       AIAgents,
			Keywords:   []string{"ai agent", "agent", "autonomous", "llm", "eliza", "gpt"},
			Confidence: domain.ConfidenceHigh,
			Evidence:   "Agent frameworks and autonomous on-chain bots are trending across repositories and community threads",
			Timeframe:  domain.TimeframeEmerging,
		},
		{
			Name:       DePINExpansion,
			Keywords:   []string{"depin", "helium", "hivemapper", "render", "physical infrastructure", "io.net"},
			Confidence: domain.ConfidenceMedium,
			Evidence:   "Decentralized physical infrastructure networks keep showing up in protocol and news flow",
			Timeframe:  domain.TimeframeGrowing,
		},
		{
			Name:       MemeCoinInfrastructure,
			Keywords:   []string{"meme", "pump", "bonk", "wif", "dog", "launchpad"},
			Confidence: domain.ConfidenceHigh,
			Evidence:   "Meme token launches and launchpad tooling dominate trending coins and community chatter",
			Timeframe:  domain.TimeframePeak,
		},
		{
			Name:       LiquidStakingGrowth,
			Keywords:   []string{"staking", "lst", "jito", "marinade", "restaking"},
			Confidence: domain.ConfidenceMedium,
			Evidence:   "Liquid staking protocols hold a large share of TVL and keep attracting deposits",
			Timeframe:  domain.TimeframeSteady,
		},
		{
			Name:       NFTInnovation,
			Keywords:   []string{"nft", "compressed", "metaplex", "collectible", "tensor", "magic eden"},
			Confidence: domain.ConfidenceMedium,
			Evidence:   "NFT tooling and marketplaces remain active in repositories and discussions",
			Timeframe:  domain.TimeframeOngoing,
		},
		{
			Name:       GamingConsumerApps,
			Keywords:   []string{"game", "gaming", "consumer", "mobile", "saga"},
			Confidence: domain.ConfidenceMedium,
			Evidence:   "Gaming and consumer mobile apps are drawing developer and user attention",
			Timeframe:  domain.TimeframeEmerging,
		},
		{
			Name:       PaymentsPayFi,
			Keywords:   []string{"payment", "payfi", "stablecoin", "usdc", "remittance"},
			Confidence: domain.ConfidenceMedium,
			Evidence:   "Stablecoin payment rails and PayFi products are recurring in news and forums",
			Timeframe:  domain.TimeframeGrowing,
		},
		{
			Name:       DeFiPrimitives,
			Keywords:   []string{"dex", "amm", "perp", "lending", "yield"},
			Confidence: domain.ConfidenceMedium,
			Evidence:   "DEX, perpetuals and lending protocols lead the TVL rankings",
			Timeframe:  domain.TimeframeSteady,
		},
	}
}

// DefaultNarratives are appended when too few rules matched.
func DefaultNarratives() []domain.Narrative {
	return []domain.Narrative{
		{
			Name:       DeveloperToolingGrowth,
			Confidence: domain.ConfidenceLow,
			Evidence:   "Baseline: developer tooling improves steadily in every active ecosystem",
			Timeframe:  domain.TimeframeOngoing,
		},
		{
			Name:       CrossChainInterop,
			Confidence: domain.ConfidenceLow,
			Evidence:   "Baseline: bridges and cross-chain messaging stay relevant as liquidity fragments",
			Timeframe:  domain.TimeframeOngoing,
		},
	}
}

// KnownNames lists every narrative name the detector can emit, in rule order
// followed by the defaults.
func KnownNames() []string {
	rules := DefaultRules()
	defaults := DefaultNarratives()
	names := make([]string, 0, len(rules)+len(defaults))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	for _, n := range defaults {
		names = append(names, n.Name)
	}
	return names
}

// IsKnown reports whether name belongs to the closed narrative enumeration.
func IsKnown(name string) bool {
	for _, known := range KnownNames() {
		if known == name {
			return true
		}
	}
	return false
}
