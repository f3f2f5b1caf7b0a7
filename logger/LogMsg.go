package logger

const MatchStartMsg = "新比賽開始 %dx%d, 先得 %d 分者勝"
const MatchQuitMsg = "玩家離開比賽 %d - %d"

const ScreenInitFailMsg = "無法初始化畫面: %v"
const ConfigFallbackMsg = "使用預設設定: %v"
