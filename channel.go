package golazo

// Channel is a named live-stream URL.
type Channel struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Channels returns the static directory of stream channels in display order.
func Channels() []Channel {
	return []Channel{
		{"ESPN 1", streamTP + "espn1"},
		{"ESPN 2", streamTP + "espn2"},
		{"ESPN 3", streamTP + "espn3"},
		{"ESPN 5", streamTP + "espn5"},
		{"ESPN 6", streamTP + "espn6"},
		{"ESPN 7", streamTP + "espn7"},
		{"Win Sports +", streamTP + "winplus"},
		{"Win Sports", streamTP + "winsports"},
		{"Fox Sports 1 (Argentina)", streamTP + "fox1ar"},
		{"Fox Sports 2 (Argentina)", streamTP + "fox2ar"},
		{"Fox Sports 3 (Argentina)", streamTP + "fox3ar"},
		{"Dsports", streamTP + "dsports"},
		{"Dsports 2", streamTP + "dsports_2"},
		{"Dsports +", streamTP + "dsports_plus"},
		{"TNT Sports Chile", streamTP + "tnt_chile"},
		{"TNT Sports Argentina", streamTP + "tntsports_argentina"},
		{"ESPN Premium Argentina", streamTP + "espn_premium"},
		{"TyC Sports", streamTP + "tyc_sports"},
		{"Telefe", streamTP + "telefe"},
		{"TV Pública", streamTP + "tv_publica"},
		{"Liga 1 MAX", streamTP + "l1max"},
		{"GolPeru", streamTP + "golperu"},
		{"ESPN Deportes", streamTP + "espn_deportes"},
		{"TUDN USA", streamTP + "tudn_usa"},
		{"Fox Deportes USA", streamTP + "fox_deportes_usa"},
		{"Claro Sports 1", streamTP + "clarosports1"},
		{"Azteca Deportes MX", streamTP + "azteca_deportes"},
		{"Fox Sports 1 MX", streamTP + "foxsportsmx"},
		{"Fox Sports Premium", streamTP + "foxsportspremium"},
		{"ESPN MX", streamTP + "espnmx"},
		{"Eurosports 1 ES", streamTP + "eurosports1_es"},
		{"Eurosports 2 ES", streamTP + "eurosports2_es"},
		{"DAZN 1 ES", streamTP + "dazn1"},
		{"DAZN 2 ES", streamTP + "dazn2"},
		{"DAZN LaLiga", streamTP + "dazn_laliga"},
	}
}

const streamTP = "https://streamtp.live/global1.php?stream="

// ChannelMap returns Channels keyed by name.
func ChannelMap() map[string]string {
	channels := Channels()
	m := make(map[string]string, len(channels))
	for _, c := range channels {
		m[c.Name] = c.URL
	}
	return m
}

// DefaultStreamPaths returns the channel pages scraped for video frames and
// excerpts, relative to the stream site.
func DefaultStreamPaths() []string {
	return []string{
		"/en-vivo/liga-1-max",
		"/en-vivo/win-sports-premium",
		"/en-vivo/espn-en-vivo-por-internet",
		"/en-vivo/espn-2-en-vivo-por-internet",
		"/en-vivo/espn-3-en-vivo-por-internet",
		"/en-vivo/fox-sports-en-vivo-por-internet",
		"/en-vivo/espn-premium-en-vivo-por-internet",
		"/en-vivo/tnt-sports-en-vivo-por-internet",
	}
}
