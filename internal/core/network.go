package core

import (
	"net"
	"strings"
	"time"

	gopsutil_net "github.com/shirou/gopsutil/v3/net"
)

// NetworkStatus is a local guess at connectivity, made without probing any
// remote host.
type NetworkStatus struct {
	Online     bool
	Interfaces []string
	Time       time.Time
	Err        error
}

// CheckNetworkStatus reports online when at least one physical interface
// is up and holds a routable address.
func CheckNetworkStatus() NetworkStatus {
	ifaces, err := gopsutil_net.Interfaces()
	status := NetworkStatus{Time: time.Now(), Err: err}
	if err != nil {
		return status
	}
	for _, iface := range ifaces {
		if !usable(iface) {
			continue
		}
		status.Interfaces = append(status.Interfaces, iface.Name)
	}
	status.Online = len(status.Interfaces) > 0
	return status
}

func usable(iface gopsutil_net.InterfaceStat) bool {
	if isVirtualInterface(iface.Name) || !hasFlag(iface.Flags, "up") || hasFlag(iface.Flags, "loopback") {
		return false
	}
	for _, a := range iface.Addrs {
		if routable(a.Addr) {
			return true
		}
	}
	return false
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

// routable accepts an address with or without a prefix length.
func routable(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		parsed, _, err := net.ParseCIDR(addr)
		if err != nil {
			return false
		}
		ip = parsed
	}
	return ip.IsGlobalUnicast() && !ip.IsLinkLocalUnicast() && !isAPIPA(ip)
}

// isAPIPA reports a 169.254.0.0/16 address, which means DHCP never answered.
func isAPIPA(ip net.IP) bool {
	ip4 := ip.To4()
	return ip4 != nil && ip4[0] == 169 && ip4[1] == 254
}

// isVirtualInterface matches loopback and common bridge or VPN devices.
func isVirtualInterface(name string) bool {
	for _, prefix := range []string{"lo", "docker", "veth", "br-", "vbox", "vmnet", "tailscale", "tun", "tap"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
