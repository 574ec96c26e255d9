package loan

import "context"

// TxManager 事务边界抽象
// 设计说明:
// 1. mysql.TxManager天然满足该接口,生产环境直接注入
// 2. 单独抽象出来是为了让生命周期用例可以在内存实现上做单元测试,
//    不需要真实的MySQL实例
type TxManager interface {
	// Transaction fn内的所有仓储操作在同一事务中执行
	// fn返回error时回滚,返回nil时提交
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
