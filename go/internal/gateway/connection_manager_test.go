package gateway

import (
	"testing"
)

func testConnection(cm *ConnectionManager, gameID string) *Connection {
	return &Connection{
		ID:      gameID + "-conn",
		GameID:  gameID,
		Send:    make(chan []byte, 4),
		Manager: cm,
	}
}

func TestConnectionManager_BroadcastReachesGamePool(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())

	watching := testConnection(cm, "g1")
	other := testConnection(cm, "g2")
	cm.registerConnection(watching)
	cm.registerConnection(other)

	cm.handleBroadcast(BroadcastMessage{GameID: "g1", Payload: []byte(`{"seq":1}`)})

	select {
	case got := <-watching.Send:
		if string(got) != `{"seq":1}` {
			t.Errorf("payload = %s", got)
		}
	default:
		t.Fatal("watching connection received nothing")
	}

	select {
	case got := <-other.Send:
		t.Fatalf("connection for another game received %s", got)
	default:
	}
}

func TestConnectionManager_UnregisterCleansEmptyPool(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())

	conn := testConnection(cm, "g1")
	cm.registerConnection(conn)
	cm.unregisterConnection(conn)

	stats := cm.GetConnectionStats()
	if got := stats["active_games"].(int); got != 0 {
		t.Errorf("active_games = %d, want 0", got)
	}
	if got := stats["total_connections"].(int); got != 0 {
		t.Errorf("total_connections = %d, want 0", got)
	}

	// A second unregister of the same connection is harmless.
	cm.unregisterConnection(conn)
}

func TestConnectionManager_StatsCountPerGame(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())

	a := testConnection(cm, "g1")
	b := testConnection(cm, "g1")
	b.ID = "g1-conn-2"
	c := testConnection(cm, "g2")
	cm.registerConnection(a)
	cm.registerConnection(b)
	cm.registerConnection(c)

	stats := cm.GetConnectionStats()
	if got := stats["total_connections"].(int); got != 3 {
		t.Errorf("total_connections = %d, want 3", got)
	}
	counts := stats["game_connections"].(map[string]int)
	if counts["g1"] != 2 || counts["g2"] != 1 {
		t.Errorf("game_connections = %v", counts)
	}
}

func TestConnectionManager_BroadcastToUnknownGameIsNoOp(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())
	cm.handleBroadcast(BroadcastMessage{GameID: "ghost", Payload: []byte("x")})
}
