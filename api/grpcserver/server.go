// Package grpcserver exposes the matching engine over gRPC. It is a
// thin adapter: all validation and sequencing happens in the service
// layer, this package only translates types and error codes.
package grpcserver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"odin/api/pb"
	"odin/domain/orderbook"
	"odin/service"
)

type Server struct {
	pb.UnimplementedOrderServiceServer

	engine *service.Engine
	log    *zap.Logger
}

func New(engine *service.Engine, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{engine: engine, log: log}
}

func (s *Server) PlaceOrder(ctx context.Context, req *pb.PlaceOrderRequest) (*pb.PlaceOrderResponse, error) {
	res, err := s.engine.Submit(service.SubmitOrder{
		ID:    req.GetOrderId(),
		Side:  sideFromProto(req.GetSide()),
		Type:  typeFromProto(req.GetType()),
		Price: req.GetPrice(),
		Qty:   req.GetQty(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.PlaceOrderResponse{
		Status:    res.Status.String(),
		SeqId:     res.Seq,
		Remaining: res.Remaining,
		Trades:    tradesToProto(res.Trades),
	}, nil
}

func (s *Server) CancelOrder(ctx context.Context, req *pb.CancelOrderRequest) (*pb.CancelOrderResponse, error) {
	if err := s.engine.Cancel(req.GetOrderId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.CancelOrderResponse{Status: "cancelled"}, nil
}

func (s *Server) AmendOrder(ctx context.Context, req *pb.AmendOrderRequest) (*pb.AmendOrderResponse, error) {
	res, err := s.engine.Amend(req.GetOrderId(), req.GetPrice(), req.GetQty())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.AmendOrderResponse{
		Status:    res.Status.String(),
		SeqId:     res.Seq,
		Remaining: res.Remaining,
		Trades:    tradesToProto(res.Trades),
	}, nil
}

func (s *Server) GetDepth(ctx context.Context, req *pb.DepthRequest) (*pb.DepthResponse, error) {
	levels := int(req.GetLevels())
	if levels <= 0 {
		levels = 10
	}

	depth := s.engine.Depth(levels)
	return &pb.DepthResponse{
		Bids: depthToProto(depth.Bids),
		Asks: depthToProto(depth.Asks),
	}, nil
}

func (s *Server) GetBook(ctx context.Context, req *pb.BookRequest) (*pb.BookResponse, error) {
	views := s.engine.ActiveOrders()

	orders := make([]*pb.OrderEntry, 0, len(views))
	for _, v := range views {
		orders = append(orders, &pb.OrderEntry{
			Id:        v.ID,
			Side:      sideToProto(v.Side),
			Type:      typeToProto(v.Type),
			Price:     v.Price.String(),
			Qty:       v.Qty,
			Remaining: v.Remaining,
			SeqId:     v.Seq,
		})
	}
	return &pb.BookResponse{Orders: orders}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, orderbook.ErrOrderNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, orderbook.ErrInvalidPrice),
		errors.Is(err, orderbook.ErrInvalidOrder):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, orderbook.ErrHalted),
		errors.Is(err, orderbook.ErrInvariantViolation):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Unknown, err.Error())
	}
}

func sideFromProto(s pb.Side) orderbook.Side {
	if s == pb.Side_ASK {
		return orderbook.Ask
	}
	return orderbook.Bid
}

func sideToProto(s orderbook.Side) pb.Side {
	if s == orderbook.Ask {
		return pb.Side_ASK
	}
	return pb.Side_BID
}

func typeFromProto(t pb.OrderType) orderbook.OrderType {
	switch t {
	case pb.OrderType_MARKET:
		return orderbook.Market
	case pb.OrderType_IOC:
		return orderbook.IOC
	case pb.OrderType_FOK:
		return orderbook.FOK
	case pb.OrderType_POST_ONLY:
		return orderbook.PostOnly
	default:
		return orderbook.Limit
	}
}

func typeToProto(t orderbook.OrderType) pb.OrderType {
	switch t {
	case orderbook.Market:
		return pb.OrderType_MARKET
	case orderbook.IOC:
		return pb.OrderType_IOC
	case orderbook.FOK:
		return pb.OrderType_FOK
	case orderbook.PostOnly:
		return pb.OrderType_POST_ONLY
	default:
		return pb.OrderType_LIMIT
	}
}

func tradesToProto(trades []orderbook.Trade) []*pb.Trade {
	if len(trades) == 0 {
		return nil
	}
	out := make([]*pb.Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, &pb.Trade{
			Price:   t.Price.String(),
			Qty:     t.Qty,
			MakerId: t.MakerID,
			TakerId: t.TakerID,
			Seq:     t.Seq,
			Time:    t.Time,
		})
	}
	return out
}

func depthToProto(levels []orderbook.DepthLevel) []*pb.DepthLevel {
	out := make([]*pb.DepthLevel, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, &pb.DepthLevel{
			Price:  lvl.Price.String(),
			Qty:    lvl.Qty,
			Orders: int32(lvl.Orders),
		})
	}
	return out
}
