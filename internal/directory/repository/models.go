package repository

import "time"

// ArtistCategory: 아티스트 분류 상수
type ArtistCategory string

// CategoryBoyGroup 은 아티스트 분류 상수 목록이다.
const (
	CategoryBoyGroup  ArtistCategory = "BOY_GROUP"
	CategoryGirlGroup ArtistCategory = "GIRL_GROUP"
	CategorySolo      ArtistCategory = "SOLO"
	CategoryMC        ArtistCategory = "MC"
	CategoryEtc       ArtistCategory = "ETC"
)

// ConcertType: 공연 유형 상수
type ConcertType string

// ConcertTypeConcert 는 공연 유형 상수 목록이다.
const (
	ConcertTypeConcert    ConcertType = "CONCERT"
	ConcertTypeFanmeeting ConcertType = "FANMEETING"
	ConcertTypeTour       ConcertType = "TOUR"
	ConcertTypeShowcase   ConcertType = "SHOWCASE"
	ConcertTypeSchedule   ConcertType = "SCHEDULE"
	ConcertTypeEtc        ConcertType = "ETC"
)

// Artist: 인기 순위를 가진 아티스트 레코드
// rank는 전체 아티스트에 대해 유니크하며, version은 낙관적 동시성 토큰이다.
type Artist struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Rank         int            `gorm:"column:rank;not null;uniqueIndex:idx_artists_rank" json:"rank"`
	ArtistNameEN string         `gorm:"column:artist_name_en;not null;index" json:"artist_name_en"`
	ArtistNameKR string         `gorm:"column:artist_name_kr;not null;default:''" json:"artist_name_kr"`
	Category     ArtistCategory `gorm:"column:category;not null;default:'ETC'" json:"category"`
	FanCount     string         `gorm:"column:fan_count;not null;default:''" json:"fan_count"` // 자유 형식 텍스트 ("1.2M" 등)
	Agency       string         `gorm:"column:agency;not null;default:''" json:"agency"`
	FandomName   string         `gorm:"column:fandom_name;not null;default:''" json:"fandom_name"`
	ColorCode    string         `gorm:"column:color_code;not null;default:''" json:"color_code"`
	IsActive     bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	Version      int64          `gorm:"column:version;not null;default:0" json:"-"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	Translations []ArtistTranslation `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"artist_translations,omitempty"`
}

func (Artist) TableName() string { return "artists" }

// ArtistTranslation: 아티스트별 언어별 소개문 레코드
// 복합 유니크 인덱스: (artist_id, lang) — 언어당 한 행만 존재한다.
type ArtistTranslation struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ArtistID    uint64    `gorm:"column:artist_id;not null;uniqueIndex:idx_artist_translations_artist_lang,priority:1" json:"artist_id"`
	Lang        string    `gorm:"column:lang;not null;uniqueIndex:idx_artist_translations_artist_lang,priority:2" json:"lang"`
	Description string    `gorm:"column:description;not null" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (ArtistTranslation) TableName() string { return "artist_translations" }

// Concert: 공연/투어 레코드
// 아티스트 참조는 선택이며, 연결이 끊긴 공연을 위해 표시 이름을 비정규화해 보관한다.
type Concert struct {
	ID           uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ArtistID     *uint64     `gorm:"column:artist_id;index" json:"artist_id,omitempty"`
	ArtistNameEN string      `gorm:"column:artist_name_en;not null;default:''" json:"artist_name_en"`
	ArtistNameKR string      `gorm:"column:artist_name_kr;not null;default:''" json:"artist_name_kr"`
	Type         ConcertType `gorm:"column:type;not null;default:'CONCERT'" json:"type"`
	StartDate    time.Time   `gorm:"column:start_date;not null;index" json:"start_date"`
	EndDate      *time.Time  `gorm:"column:end_date" json:"end_date,omitempty"`
	Venue        string      `gorm:"column:venue;not null;default:''" json:"venue"`
	City         string      `gorm:"column:city;not null;default:''" json:"city"`
	Country      string      `gorm:"column:country;not null;default:''" json:"country"`
	Price        string      `gorm:"column:price;not null;default:''" json:"price"`
	Description  string      `gorm:"column:description;not null;default:''" json:"description"`
	Memo         string      `gorm:"column:memo;not null;default:''" json:"memo"`
	CreatedAt    time.Time   `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (Concert) TableName() string { return "concerts" }

// ValidCategory: 카테고리 문자열이 허용된 값인지 확인한다.
func ValidCategory(c ArtistCategory) bool {
	switch c {
	case CategoryBoyGroup, CategoryGirlGroup, CategorySolo, CategoryMC, CategoryEtc:
		return true
	default:
		return false
	}
}

// ValidConcertType: 공연 유형 문자열이 허용된 값인지 확인한다.
func ValidConcertType(t ConcertType) bool {
	switch t {
	case ConcertTypeConcert, ConcertTypeFanmeeting, ConcertTypeTour,
		ConcertTypeShowcase, ConcertTypeSchedule, ConcertTypeEtc:
		return true
	default:
		return false
	}
}
