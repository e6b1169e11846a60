package services

import (
	"math/rand"
	"strconv"

	"ser-backend/models"
)

// Kumpulan nama tampilan untuk partner simulasi.
var partnerNames = []string{"سارة", "محمد", "فاطمة", "علي"}

var partnerGenders = []string{"male", "female"}

// ChatService menghasilkan data dummy untuk layanan chat anonim.
// Belum ada algoritma pencocokan sungguhan; semua nilai acak.
type ChatService struct{}

// NewChatService creates a new ChatService.
func NewChatService() *ChatService {
	return &ChatService{}
}

// RandomPartner generates a simulated chat partner.
func (s *ChatService) RandomPartner() models.Partner {
	return models.Partner{
		ID:          strconv.Itoa(rand.Intn(9000) + 1000),
		DisplayName: partnerNames[rand.Intn(len(partnerNames))],
		AvatarURL:   nil,
		Gender:      partnerGenders[rand.Intn(len(partnerGenders))],
	}
}

// RandomStats generates placeholder chat statistics.
func (s *ChatService) RandomStats() models.ChatStats {
	return models.ChatStats{
		TotalChats:      rand.Intn(91) + 10,      // 10 s.d. 100
		TotalTime:       rand.Intn(32401) + 3600, // 3600 s.d. 36000 detik
		AverageDuration: rand.Intn(1501) + 300,   // 300 s.d. 1800 detik
	}
}
