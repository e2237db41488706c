package govalorant

import (
	"time"

	"github.com/google/uuid"
)

// Bundle is a store bundle as returned by /v1/bundles.
type Bundle struct {
	UUID                 uuid.UUID `json:"uuid" validate:"required"`
	DisplayName          string    `json:"displayName" validate:"required"`
	DisplayNameSubText   *string   `json:"displayNameSubText"`
	Description          string    `json:"description"`
	ExtraDescription     *string   `json:"extraDescription"`
	PromoDescription     *string   `json:"promoDescription"`
	UseAdditionalContext bool      `json:"useAdditionalContext"`
	DisplayIcon          string    `json:"displayIcon"`
	DisplayIcon2         string    `json:"displayIcon2"`
	LogoIcon             *string   `json:"logoIcon"`
	VerticalPromoImage   *string   `json:"verticalPromoImage"`
	AssetPath            string    `json:"assetPath"`
}

// Agent is a playable (or test) character from /v1/agents.
type Agent struct {
	UUID                      uuid.UUID  `json:"uuid" validate:"required"`
	DisplayName               string     `json:"displayName" validate:"required"`
	Description               string     `json:"description"`
	DeveloperName             string     `json:"developerName"`
	CharacterTags             []string   `json:"characterTags"`
	DisplayIcon               string     `json:"displayIcon"`
	DisplayIconSmall          string     `json:"displayIconSmall"`
	BustPortrait              *string    `json:"bustPortrait"`
	FullPortrait              *string    `json:"fullPortrait"`
	FullPortraitV2            *string    `json:"fullPortraitV2"`
	KillfeedPortrait          string     `json:"killfeedPortrait"`
	Background                *string    `json:"background"`
	BackgroundGradientColors  []string   `json:"backgroundGradientColors"`
	AssetPath                 string     `json:"assetPath"`
	IsFullPortraitRightFacing bool       `json:"isFullPortraitRightFacing"`
	IsPlayableCharacter       bool       `json:"isPlayableCharacter"`
	IsAvailableForTest        bool       `json:"isAvailableForTest"`
	IsBaseContent             bool       `json:"isBaseContent"`
	Role                      *AgentRole `json:"role"`
	Abilities                 []Ability  `json:"abilities"`
}

type AgentRole struct {
	UUID        uuid.UUID `json:"uuid"`
	DisplayName string    `json:"displayName"`
	Description string    `json:"description"`
	DisplayIcon string    `json:"displayIcon"`
	AssetPath   string    `json:"assetPath"`
}

// Ability slots are "Ability1", "Ability2", "Grenade", "Ultimate" and "Passive".
type Ability struct {
	Slot        string  `json:"slot"`
	DisplayName string  `json:"displayName"`
	Description string  `json:"description"`
	DisplayIcon *string `json:"displayIcon"`
}

// Map is a game map from /v1/maps. Range maps have no coordinates or callouts.
type Map struct {
	UUID                    uuid.UUID `json:"uuid" validate:"required"`
	DisplayName             string    `json:"displayName" validate:"required"`
	NarrativeDescription    *string   `json:"narrativeDescription"`
	TacticalDescription     *string   `json:"tacticalDescription"`
	Coordinates             *string   `json:"coordinates"`
	DisplayIcon             *string   `json:"displayIcon"`
	ListViewIcon            string    `json:"listViewIcon"`
	ListViewIconTall        *string   `json:"listViewIconTall"`
	Splash                  string    `json:"splash"`
	StylizedBackgroundImage *string   `json:"stylizedBackgroundImage"`
	PremierBackgroundImage  *string   `json:"premierBackgroundImage"`
	AssetPath               string    `json:"assetPath"`
	MapURL                  string    `json:"mapUrl"`
	XMultiplier             float64   `json:"xMultiplier"`
	YMultiplier             float64   `json:"yMultiplier"`
	XScalarToAdd            float64   `json:"xScalarToAdd"`
	YScalarToAdd            float64   `json:"yScalarToAdd"`
	Callouts                []Callout `json:"callouts"`
}

type Callout struct {
	RegionName      string   `json:"regionName"`
	SuperRegionName string   `json:"superRegionName"`
	Location        Location `json:"location"`
}

type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Currency is an in-game currency such as VP or Radianite.
type Currency struct {
	UUID                uuid.UUID `json:"uuid" validate:"required"`
	DisplayName         string    `json:"displayName" validate:"required"`
	DisplayNameSingular string    `json:"displayNameSingular"`
	DisplayIcon         string    `json:"displayIcon"`
	LargeIcon           string    `json:"largeIcon"`
	RewardPreviewIcon   *string   `json:"rewardPreviewIcon"`
	AssetPath           string    `json:"assetPath"`
}

// ContentTier is an item rarity tier (Select, Deluxe, Premium, Exclusive, Ultra).
type ContentTier struct {
	UUID           uuid.UUID `json:"uuid" validate:"required"`
	DisplayName    string    `json:"displayName" validate:"required"`
	DevName        string    `json:"devName"`
	Rank           int       `json:"rank"`
	JuiceValue     int       `json:"juiceValue"`
	JuiceCost      int       `json:"juiceCost"`
	HighlightColor string    `json:"highlightColor"`
	DisplayIcon    string    `json:"displayIcon"`
	AssetPath      string    `json:"assetPath"`
}

type PlayerCard struct {
	UUID               uuid.UUID  `json:"uuid" validate:"required"`
	DisplayName        string     `json:"displayName" validate:"required"`
	IsHiddenIfNotOwned bool       `json:"isHiddenIfNotOwned"`
	ThemeUUID          *uuid.UUID `json:"themeUuid"`
	DisplayIcon        string     `json:"displayIcon"`
	SmallArt           *string    `json:"smallArt"`
	WideArt            *string    `json:"wideArt"`
	LargeArt           *string    `json:"largeArt"`
	AssetPath          string     `json:"assetPath"`
}

// PlayerTitle may have neither a display name nor a title text (the empty title).
type PlayerTitle struct {
	UUID               uuid.UUID `json:"uuid" validate:"required"`
	DisplayName        *string   `json:"displayName"`
	TitleText          *string   `json:"titleText"`
	IsHiddenIfNotOwned bool      `json:"isHiddenIfNotOwned"`
	AssetPath          string    `json:"assetPath"`
}

type Spray struct {
	UUID                uuid.UUID    `json:"uuid" validate:"required"`
	DisplayName         string       `json:"displayName" validate:"required"`
	Category            *string      `json:"category"`
	ThemeUUID           *uuid.UUID   `json:"themeUuid"`
	IsNullSpray         bool         `json:"isNullSpray"`
	HideIfNotOwned      bool         `json:"hideIfNotOwned"`
	DisplayIcon         string       `json:"displayIcon"`
	FullIcon            *string      `json:"fullIcon"`
	FullTransparentIcon *string      `json:"fullTransparentIcon"`
	AnimationPNG        *string      `json:"animationPng"`
	AnimationGIF        *string      `json:"animationGif"`
	AssetPath           string       `json:"assetPath"`
	Levels              []SprayLevel `json:"levels"`
}

type SprayLevel struct {
	UUID        uuid.UUID `json:"uuid"`
	SprayLevel  int       `json:"sprayLevel"`
	DisplayName string    `json:"displayName"`
	DisplayIcon *string   `json:"displayIcon"`
	AssetPath   string    `json:"assetPath"`
}

// Season is an episode or act. Acts reference their episode through ParentUUID.
type Season struct {
	UUID        uuid.UUID  `json:"uuid" validate:"required"`
	DisplayName string     `json:"displayName" validate:"required"`
	Title       *string    `json:"title"`
	Type        *string    `json:"type"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     time.Time  `json:"endTime"`
	ParentUUID  *uuid.UUID `json:"parentUuid"`
	AssetPath   string     `json:"assetPath"`
}

// Active reports whether now falls inside the season.
func (s Season) Active(now time.Time) bool {
	return !now.Before(s.StartTime) && now.Before(s.EndTime)
}

// Version describes the game build upstream data was extracted from.
type Version struct {
	ManifestID        string    `json:"manifestId"`
	Branch            string    `json:"branch"`
	Version           string    `json:"version" validate:"required"`
	BuildVersion      string    `json:"buildVersion"`
	EngineVersion     string    `json:"engineVersion"`
	RiotClientVersion string    `json:"riotClientVersion"`
	RiotClientBuild   string    `json:"riotClientBuild"`
	BuildDate         time.Time `json:"buildDate"`
}
